package source

type options struct {
	format Format
	sheet  string
}

// Option applies a configuration option to Open.
type Option func(*options)

// WithFormat forces a specific decoder instead of extension detection.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != "" {
			o.format = f
		}
	}
}

// WithSheet names the worksheet for spreadsheet sources. Blank keeps
// the first sheet.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

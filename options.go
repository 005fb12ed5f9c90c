package richtext

// Option configures a ComposerModel at construction.
type Option func(*config)

type config struct {
	content        string
	maxUndoEntries int
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContent sets the initial content as HTML.
func WithContent(html string) Option {
	return func(c *config) { c.content = html }
}

// WithMaxUndoEntries caps the undo stack depth. Values <= 0 use the
// default limit.
func WithMaxUndoEntries(n int) Option {
	return func(c *config) { c.maxUndoEntries = n }
}

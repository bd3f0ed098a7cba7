package caplog

// Option configures a Capture at construction time.
type Option func(*Capture)

// WithMinLevel sets the capture floor: entries below the given severity
// number are not recorded. Use the eventlist.Num* constants. The default
// captures everything.
func WithMinLevel(min int) Option {
	return func(c *Capture) {
		c.min = min
	}
}

// WithID overrides the generated capture identifier.
func WithID(id string) Option {
	return func(c *Capture) {
		c.id = id
	}
}

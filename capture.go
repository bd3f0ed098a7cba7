package caplog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/structcap/caplog/eventlist"
)

// TestingT is the subset of *testing.T the fixture needs.
type TestingT interface {
	Cleanup(func())
	Failed() bool
	Logf(format string, args ...any)
}

// Capture owns the events recorded during a single test.
type Capture struct {
	id     string
	events *eventlist.List
	min    int
}

// New creates a fresh Capture and installs it behind the zap global loggers
// (zap.L, zap.S and anything routed through them). The previous globals are
// restored on test cleanup, and when the test failed the captured events are
// attached to its output.
func New(t TestingT, opts ...Option) *Capture {
	c, core := Observe(opts...)
	restore := zap.ReplaceGlobals(zap.New(core))

	t.Cleanup(func() {
		restore()
		if t.Failed() && c.events.Len() > 0 {
			t.Logf("caplog %s captured events:\n%s", c.id, c.Dump())
		}
	})

	return c
}

// Observe creates a Capture and its capturing core without touching any
// global state. Wire the core into a logger with zap.New(core) or
// zap.WrapCore.
func Observe(opts ...Option) (*Capture, zapcore.Core) {
	c := &Capture{
		id:     uuid.NewString(),
		events: eventlist.NewList(nil, false),
		min:    eventlist.NumDebug,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, &capcore{cap: c}
}

// ID returns the capture identifier used to tag the failure report.
func (c *Capture) ID() string {
	return c.id
}

// Events returns the live sequence of captured events. Comparisons on it
// require full event equality.
func (c *Capture) Events() *eventlist.List {
	return c.events
}

// PartialEvents returns a copy of the captured sequence where expected
// events match as submaps of actual ones.
func (c *Capture) PartialEvents() *eventlist.List {
	return eventlist.NewList(c.events.Events(), true)
}

// Has reports whether some captured event carries the given message and at
// least the given key/value context pairs.
func (c *Capture) Has(message string, kv ...any) bool {
	expected := eventlist.Pairs(kv...)
	expected["event"] = message

	for _, ev := range c.events.Events() {
		if eventlist.IsSubmap(expected, ev) {
			return true
		}
	}

	return false
}

// Log builds an expected event to assert against. The level may be a number
// or a name in any case.
func (c *Capture) Log(level any, message string, kv ...any) eventlist.Event {
	return eventlist.New(level, message, kv...)
}

// Debug builds a debug-level expected event.
func (c *Capture) Debug(message string, kv ...any) eventlist.Event {
	return eventlist.Debug(message, kv...)
}

// Info builds an info-level expected event.
func (c *Capture) Info(message string, kv ...any) eventlist.Event {
	return eventlist.Info(message, kv...)
}

// Warning builds a warning-level expected event.
func (c *Capture) Warning(message string, kv ...any) eventlist.Event {
	return eventlist.Warning(message, kv...)
}

// Error builds an error-level expected event.
func (c *Capture) Error(message string, kv ...any) eventlist.Event {
	return eventlist.Error(message, kv...)
}

// Critical builds a critical-level expected event.
func (c *Capture) Critical(message string, kv ...any) eventlist.Event {
	return eventlist.Critical(message, kv...)
}

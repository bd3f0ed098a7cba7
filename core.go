package caplog

import (
	"go.uber.org/zap/zapcore"

	"github.com/structcap/caplog/eventlist"
)

var _ zapcore.Core = (*capcore)(nil)

// capcore records every entry written through it as an eventlist.Event and
// forwards nothing downstream.
type capcore struct {
	cap *Capture
	// fields bound via With, applied before call-site fields
	ctx []zapcore.Field
}

func (c *capcore) Enabled(l zapcore.Level) bool {
	return levelNumber(l) >= c.cap.min
}

func (c *capcore) With(fields []zapcore.Field) zapcore.Core {
	ctx := make([]zapcore.Field, 0, len(c.ctx)+len(fields))
	ctx = append(ctx, c.ctx...)
	ctx = append(ctx, fields...)
	return &capcore{cap: c.cap, ctx: ctx}
}

func (c *capcore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *capcore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for i := range c.ctx {
		c.ctx[i].AddTo(enc)
	}
	for i := range fields {
		fields[i].AddTo(enc)
	}

	ev := eventlist.Event(enc.Fields)
	ev["event"] = ent.Message
	ev["level"] = levelName(ent.Level)
	c.cap.events.Append(ev)

	return nil
}

func (c *capcore) Sync() error {
	return nil
}

// levelName bridges zap levels to the canonical severity names. Warn maps to
// "warning"; everything above Error collapses into "critical".
func levelName(l zapcore.Level) string {
	switch {
	case l <= zapcore.DebugLevel:
		return "debug"
	case l == zapcore.InfoLevel:
		return "info"
	case l == zapcore.WarnLevel:
		return "warning"
	case l == zapcore.ErrorLevel:
		return "error"
	default:
		return "critical"
	}
}

// levelNumber cannot fail: levelName only produces known names.
func levelNumber(l zapcore.Level) int {
	n, _ := eventlist.Number(levelName(l))
	return n
}

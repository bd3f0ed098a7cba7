package eventlist

// Event is a single captured log event: the message under the "event" key,
// the lowercase severity name under "level", plus arbitrary context keys.
// Events are never mutated after capture.
type Event map[string]any

// Pairs builds an Event from a flat key/value list ("k1", v1, "k2", v2, ...).
// Non-string keys and an odd trailing key are ignored.
func Pairs(kv ...any) Event {
	ev := make(Event, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev[k] = kv[i+1]
	}
	return ev
}

// New builds an expected event for use in comparisons. The level may be a
// number or a name in any case; it is stored under "level" in canonical
// lowercase form, the message under "event".
func New(level any, message string, kv ...any) Event {
	ev := Pairs(kv...)
	ev["event"] = message
	ev["level"] = Name(level)
	return ev
}

// Debug builds a debug-level expected event.
func Debug(message string, kv ...any) Event {
	return New(NumDebug, message, kv...)
}

// Info builds an info-level expected event.
func Info(message string, kv ...any) Event {
	return New(NumInfo, message, kv...)
}

// Warning builds a warning-level expected event.
func Warning(message string, kv ...any) Event {
	return New(NumWarning, message, kv...)
}

// Error builds an error-level expected event.
func Error(message string, kv ...any) Event {
	return New(NumError, message, kv...)
}

// Critical builds a critical-level expected event.
func Critical(message string, kv ...any) Event {
	return New(NumCritical, message, kv...)
}

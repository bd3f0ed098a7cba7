package eventlist

// List is an insertion-ordered sequence of captured events with containment
// comparisons instead of lexicographic ones. The partial flag is fixed at
// construction: an exact List compares events by full equality, a partial
// List compares them as submaps. Filtered views inherit the flag and never
// reorder events.
//
// The comparison methods deliberately keep an asymmetric wiring:
// MatchesExactly and Contains both check that the list contains the argument,
// while IsSubsequenceOf checks the reverse direction. MatchesExactly is a
// length check plus one-directional containment, not mutual containment.
type List struct {
	events  []Event
	partial bool
}

// NewList builds a List over a copy of events. With partial set, expected
// events in comparisons only need to be submaps of actual ones.
func NewList(events []Event, partial bool) *List {
	l := &List{
		events:  make([]Event, len(events)),
		partial: partial,
	}
	copy(l.events, events)
	return l
}

func (l *List) compare(expected, actual []Event) bool {
	if l.partial {
		return IsSubseqOfSubmaps(expected, actual)
	}
	return IsSubseq(expected, actual)
}

// Append adds an event to the end of the list.
func (l *List) Append(ev Event) {
	l.events = append(l.events, ev)
}

// Len returns the number of events in the list.
func (l *List) Len() int {
	return len(l.events)
}

// Events returns a copy of the underlying sequence in capture order.
func (l *List) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Partial reports whether comparisons use submap matching.
func (l *List) Partial() bool {
	return l.partial
}

// Contains reports whether expected is a match-subsequence of the list
// (the list is a superset sequence).
func (l *List) Contains(expected []Event) bool {
	return l.compare(expected, l.events)
}

// ContainsProperly is Contains with a strictly greater length. Equal-length
// sequences never satisfy it, even when containment holds.
func (l *List) ContainsProperly(expected []Event) bool {
	return len(l.events) > len(expected) && l.compare(expected, l.events)
}

// IsSubsequenceOf reports whether the list is a match-subsequence of other.
func (l *List) IsSubsequenceOf(other []Event) bool {
	return l.compare(l.events, other)
}

// IsProperSubsequenceOf is IsSubsequenceOf with a strictly smaller length.
func (l *List) IsProperSubsequenceOf(other []Event) bool {
	return len(l.events) < len(other) && l.compare(l.events, other)
}

// MatchesExactly reports whether expected has the same length as the list
// and the list contains it as a match-subsequence.
func (l *List) MatchesExactly(expected []Event) bool {
	return len(l.events) == len(expected) && l.compare(expected, l.events)
}

// FilterByLevel returns a new List, same partial flag, with only the events
// whose severity is at least the given level (number or name). The error
// from an unknown level name propagates.
func (l *List) FilterByLevel(level any) (*List, error) {
	threshold, err := Number(level)
	if err != nil {
		return nil, err
	}

	out := &List{partial: l.partial}
	for _, ev := range l.events {
		n, err := Number(ev["level"])
		if err != nil {
			return nil, err
		}
		if n >= threshold {
			out.events = append(out.events, ev)
		}
	}

	return out, nil
}

// atLeast backs the convenience views. Captured events always carry known
// levels; if a hand-built event slipped in with one that does not parse, the
// view is empty rather than nil. Use FilterByLevel to observe the error.
func (l *List) atLeast(min int) *List {
	out, err := l.FilterByLevel(min)
	if err != nil {
		return &List{partial: l.partial}
	}
	return out
}

// Infos returns a copy with only events of info level or higher.
func (l *List) Infos() *List {
	return l.atLeast(NumInfo)
}

// Warnings returns a copy with only events of warning level or higher.
func (l *List) Warnings() *List {
	return l.atLeast(NumWarning)
}

// Errors returns a copy with only events of error level or higher.
func (l *List) Errors() *List {
	return l.atLeast(NumError)
}

// Criticals returns a copy with only events of critical level.
func (l *List) Criticals() *List {
	return l.atLeast(NumCritical)
}

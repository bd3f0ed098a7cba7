package eventlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubmap(t *testing.T) {
	ev := Event{"event": "inf", "level": "info", "k": "v", "n": int64(123)}

	assert.True(t, IsSubmap(Event{}, ev))
	assert.True(t, IsSubmap(Event{"event": "inf"}, ev))
	assert.True(t, IsSubmap(Event{"event": "inf", "n": int64(123)}, ev))
	assert.True(t, IsSubmap(ev, ev))

	// wrong value
	assert.False(t, IsSubmap(Event{"event": "inf", "n": int64(0)}, ev))
	// numeric width matters under DeepEqual
	assert.False(t, IsSubmap(Event{"n": 123}, ev))
	// key absent from actual
	assert.False(t, IsSubmap(Event{"event": "inf", "extra": "WRONG"}, ev))
	// empty actual fails any non-empty expectation
	assert.False(t, IsSubmap(Event{"event": "inf"}, Event{}))
}

var (
	d0 = Event{"event": "dbg", "k": "v", "level": "debug"}
	d1 = Event{"event": "inf", "k": "v", "level": "info", "kk": "more context"}
	d2 = Event{"event": "uh-oh", "level": "warning"}
)

func TestIsSubseq(t *testing.T) {
	actual := []Event{d0, d1, d2}

	assert.True(t, IsSubseq(nil, actual))
	assert.True(t, IsSubseq([]Event{}, nil))
	assert.True(t, IsSubseq([]Event{d0}, actual))
	assert.True(t, IsSubseq([]Event{d0, d2}, actual))
	assert.True(t, IsSubseq([]Event{d0, d1, d2}, actual))

	// order must be respected even when all elements are present
	assert.False(t, IsSubseq([]Event{d2, d0}, actual))
	assert.False(t, IsSubseq([]Event{d0, d1, d2, {}}, actual))
	assert.False(t, IsSubseq([]Event{d0}, nil))
}

func TestIsSubseqMultiplicity(t *testing.T) {
	a := Event{"event": "a", "level": "info"}
	b := Event{"event": "b", "level": "info"}
	actual := []Event{a, a, b}

	assert.True(t, IsSubseq([]Event{a}, actual))
	assert.True(t, IsSubseq([]Event{a, b}, actual))
	assert.True(t, IsSubseq([]Event{a, a, b}, actual))
	// only two "a" events were captured
	assert.False(t, IsSubseq([]Event{a, a, a, b}, actual))
}

func TestIsSubseqOfSubmaps(t *testing.T) {
	actual := []Event{d0, d1, d2}

	assert.True(t, IsSubseqOfSubmaps(nil, actual))
	assert.True(t, IsSubseqOfSubmaps([]Event{{"event": "dbg"}, {"event": "inf"}}, actual))
	assert.True(t, IsSubseqOfSubmaps([]Event{{"event": "dbg"}, {"event": "uh-oh"}}, actual))
	assert.True(t, IsSubseqOfSubmaps([]Event{{}, {}, {}}, actual))

	assert.False(t, IsSubseqOfSubmaps([]Event{{"event": "uh-oh"}, {"event": "dbg"}}, actual))
	assert.False(t, IsSubseqOfSubmaps([]Event{{"event": "dbg"}, {"event": "inf"}, {"event": "WRONG"}}, actual))
	assert.False(t, IsSubseqOfSubmaps([]Event{{"event": "dbg"}, {"event": "inf", "data": "WRONG"}}, actual))
}

func TestIsSubseqOfSubmapsGreedyCursor(t *testing.T) {
	// the shared cursor consumes through each match, so the second {} has
	// nothing left to match against
	actual := []Event{d0}
	assert.True(t, IsSubseqOfSubmaps([]Event{{}}, actual))
	assert.False(t, IsSubseqOfSubmaps([]Event{{}, {}}, actual))
}

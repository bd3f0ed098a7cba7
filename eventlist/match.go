package eventlist

import "reflect"

// IsSubmap reports whether every key of expected is present in actual with an
// equal value. Keys present only in actual are ignored. Values compare with
// reflect.DeepEqual, so numeric width matters: zap integer fields are
// captured as int64.
func IsSubmap(expected, actual Event) bool {
	for k, v := range expected {
		av, ok := actual[k]
		if !ok || !reflect.DeepEqual(av, v) {
			return false
		}
	}
	return true
}

// IsSubseq reports whether expected is an order-preserving subsequence of
// actual under full-event equality. A single cursor walks actual once,
// taking the earliest equal element for each expected event in turn.
func IsSubseq(expected, actual []Event) bool {
	i := 0
	for _, want := range expected {
		for {
			if i == len(actual) {
				return false
			}
			i++
			if reflect.DeepEqual(actual[i-1], want) {
				break
			}
		}
	}
	return true
}

// IsSubseqOfSubmaps reports whether actual contains, in order, one matching
// element per expected event, where matching means the expected event is a
// submap of the actual one. The cursor is shared across all expected events
// and only moves forward, taking the earliest submap match each time. With
// submap matching the earliest choice is not always the safest one, so this
// can miss contrived interleavings where a later expected event needed the
// element an earlier one consumed; that is accepted behavior.
func IsSubseqOfSubmaps(expected, actual []Event) bool {
	i := 0
	for _, want := range expected {
		for {
			if i == len(actual) {
				return false
			}
			i++
			if IsSubmap(want, actual[i-1]) {
				break
			}
		}
	}
	return true
}

// Package caplog captures structured zap log events during a test and
// exposes them to assertions.
//
// [New] installs a capturing core behind the zap global loggers for the
// duration of one test and restores the previous configuration on cleanup.
// [Observe] produces the same capture wired as a plain [zapcore.Core] for
// tests that build their own logger. The core is a terminal sink: captured
// entries are recorded and not forwarded anywhere.
//
// Captured events live in an [eventlist.List], whose comparison methods
// implement subsequence containment rather than lexicographic order. The
// partial view relaxes event comparison to submap containment, so expected
// events only need to name the keys under test.
//
// When a test fails, the events captured during it are attached to the test
// output as one JSON object per line.
package caplog

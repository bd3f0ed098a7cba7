// Package eventlist implements the comparison model for captured log events.
//
// The central type is [List], an ordered sequence of [Event] values that
// replaces lexicographic comparison with subsequence containment: an expected
// sequence matches when its elements appear in the actual sequence in the
// same relative order, possibly with other events interspersed. A List built
// with partial matching compares individual events as submaps, so expected
// events only need to name the keys they care about.
//
// The predicates [IsSubmap], [IsSubseq] and [IsSubseqOfSubmaps] are exported
// for direct use. Severity levels are identified interchangeably by number or
// case-insensitive name via [Number] and [Name].
package eventlist

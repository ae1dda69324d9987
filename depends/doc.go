// Package depends models Makefile-style dependencies between named targets.
//
// Each target is a vertex of a directed labeled graph whose label is the
// Rule that builds it; an edge t → p means t depends on prerequisite p.
// A target named only as a prerequisite gets an unlabeled vertex until a
// rule for it arrives.
//
// Several rules may name the same target. Their prerequisites accumulate in
// the order given, but at most one of them may carry commands.
//
// BuildOrder walks the graph depth first and emits targets as they finish,
// so every prerequisite precedes the targets that need it. A dependency
// cycle reachable from the requested target yields ErrCycle.
package depends

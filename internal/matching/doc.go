// Package matching is the profile matching and ranking engine. It is a
// pure, synchronous computation over already-fetched records: callers hand
// it test answer sets, grade records and catalog snapshots, and it returns
// ranked recommendation lists. It performs no I/O and keeps no state
// between calls, so concurrent invocations never interfere.
package matching

// Package pkguid provides the identifier generators used inside ulidgen.
//
// The tool depends on the StringID interface so the strategy stays
// swappable in tests. The default implementation hands out monotonic ULIDs,
// which keeps correlation IDs of successive runs sortable in the logs.
package pkguid

// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package strv implements zero-copy string views: a small value type
// referencing a run of bytes inside an externally owned buffer, plus
// operations for comparing, searching, trimming and incrementally
// splitting such references without copying the data.
//
// A View is in one of two zero-length-capable states. The invalid view
// (the zero value) means "no result" and is what failed searches and
// exhausted splits return. A valid view of length zero is a legitimate
// empty match, for example a split exactly at a boundary. IsValid
// distinguishes them; content comparison does not, two zero-length
// views are content-equal regardless of validity.
//
// Views borrow their bytes. The caller keeps the backing buffer alive
// for as long as any view derived from it is in use, and does not
// mutate the viewed region. Neither is checked at runtime.
//
// The consuming split operations (SplitFirst, SplitAt, SplitLine, ...)
// take a pointer receiver, return the consumed portion and shrink the
// source in place to the unconsumed remainder. A single view being
// split is a cursor and must not be shared between goroutines without
// external locking; plain reads of independent views over one buffer
// need no coordination.
package strv

// Package data provides the tabular data contract consumed and exposed by
// filters, plus a typed in-memory [Table] implementation.
//
// A [Source] is an ordered sequence of rows, each an ordered sequence of
// nullable numeric cells. Column and row counts are queried live on every
// call, so views layered on top of a Source (see package filter) always
// reflect its current shape.
//
//	tab := data.NewTable(data.TypeFloat64, data.TypeInt64)
//	_ = tab.Add(1.5, 3)
//	_ = tab.Add(nil, 4) // null float cell
//	c, err := tab.Get(0, 1)
//	// c.Valid == false, err == nil
package data

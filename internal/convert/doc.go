// Package convert turns a Table into grouped tree records and back.
//
// # Conversion
//
// Every data row becomes one record: each cell is written at the path its
// header names. Rows whose identity columns (headers without "." or "[]")
// hold the same values share a row key and are merged, so repeated rows
// contribute successive elements to list fields:
//
//	name  age  hobby[]   family[]name
//	Hong  30   reading   Kim
//	Hong  30   hiking    Lee
//
// yields one record with hobby ["reading","hiking"] and family
// [{"name":"Kim"},{"name":"Lee"}]. Records come out in the order their row
// keys first appear.
//
// # Flatten
//
// Flatten goes the other way, laying records out as rows with the same header
// convention so that converting the result groups them again.
package convert

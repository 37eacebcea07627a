// Package profile loads conversion settings from a YAML file.
//
// A profile records how a team's sheets are read and converted so that the
// same flags need not be repeated on every run:
//
//	version: "1"
//	empty: omit
//	legacy_marker: XX
//	key_separator: ""
//	normalize: true
//	input:
//	  format: csv
//	  comma: ";"
//	output:
//	  format: yaml
//	  indent: 2
//
// Every field is optional. Values from the environment (SHEET2TREE_*, also
// read from a .env file) override the file.
package profile

// Package codegen generates standalone Go matchers from compiled automata.
package codegen

import "fmt"

// Variable names used in generated code
const (
	InputName    = "input"
	InputLenName = "l"
	OffsetName   = "offset"
	PendingName  = "pending"
	SeenName     = "seen"
	FrontierName = "frontier"
)

// TableName returns the package-level variable name for one of the
// automaton tables of the generated type name.
func TableName(name, table string) string {
	return fmt.Sprintf("%s%s", LowerFirst(name), UpperFirst(table))
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

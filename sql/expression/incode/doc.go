// Package incode compiles the list of an IN predicate into a routine that
// tests membership of a value.
//
// The constants of the list are placed in a table chosen by Select: a direct
// switch on integer-like keys, a hashed switch for other types, or a set once
// the list grows past the switch threshold. Residual expressions, which can't
// be known until a row is evaluated, are checked after the table in the order
// they were given. NULLs follow SQL three-valued logic whatever the table.
package incode

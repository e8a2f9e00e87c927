// Package charclass classifies single code units of source text.
//
// Classification is a pure function of the text and an index. Type and
// category are computed by two independent ordered rule tables: the first
// matching predicate wins, and the two tables use different precedence.
// All tables are package-level values built once at start-up and never
// mutated afterwards.
package charclass

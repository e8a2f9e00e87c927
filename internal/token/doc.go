// Package token defines the token model and the immutable lexical tables.
// Invariants:
//   - Token.Value is a substring of the analysed text; concatenating all
//     Values in order reproduces the text byte for byte.
//   - Token.Characters is a contiguous sub-slice of the classified
//     character sequence and len(Characters) == Length.
//   - The reserved-word, operator and punctuation tables are built once at
//     package initialisation and never mutated.
package token

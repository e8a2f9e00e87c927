// Package lexer splits classified characters into tokens by maximal munch.
// Rules are tried in a fixed order (whitespace, string, number, operator,
// punctuation, identifier/keyword, symbol) and the tokenizer never fails:
// anything unrecognised becomes a one-unit symbol token.
package lexer

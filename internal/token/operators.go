package token

import (
	"sort"
	"strings"
)

// OperatorGroup is the subtype given to an operator token.
type OperatorGroup string

const (
	OpArithmetic  OperatorGroup = "arithmetic"
	OpComparison  OperatorGroup = "comparison"
	OpLogical     OperatorGroup = "logical"
	OpBitwise     OperatorGroup = "bitwise"
	OpAssignment  OperatorGroup = "assignment"
	OpArrow       OperatorGroup = "arrow"
	OpOptional    OperatorGroup = "optional-chaining"
	OpSpread      OperatorGroup = "spread"
	OpNullish     OperatorGroup = "nullish"
	OpConditional OperatorGroup = "conditional"
	OpUpdate      OperatorGroup = "update"
)

// operatorGroups is the fixed operator vocabulary; nothing outside it is
// ever matched as one token.
var operatorGroups = map[string]OperatorGroup{
	">>>=": OpAssignment,
	"===":  OpComparison,
	"!==":  OpComparison,
	"<<=":  OpAssignment,
	">>=":  OpAssignment,
	">>>":  OpBitwise,
	"...":  OpSpread,
	"==":   OpComparison,
	"!=":   OpComparison,
	"<=":   OpComparison,
	">=":   OpComparison,
	"&&":   OpLogical,
	"||":   OpLogical,
	"??":   OpNullish,
	"?.":   OpOptional,
	"=>":   OpArrow,
	"++":   OpUpdate,
	"--":   OpUpdate,
	"+=":   OpAssignment,
	"-=":   OpAssignment,
	"*=":   OpAssignment,
	"/=":   OpAssignment,
	"%=":   OpAssignment,
	"&=":   OpAssignment,
	"|=":   OpAssignment,
	"^=":   OpAssignment,
	"**":   OpArithmetic,
	"<<":   OpBitwise,
	">>":   OpBitwise,
	"+":    OpArithmetic,
	"-":    OpArithmetic,
	"*":    OpArithmetic,
	"/":    OpArithmetic,
	"%":    OpArithmetic,
	"=":    OpAssignment,
	"<":    OpComparison,
	">":    OpComparison,
	"!":    OpLogical,
	"&":    OpBitwise,
	"|":    OpBitwise,
	"^":    OpBitwise,
	"~":    OpBitwise,
	"?":    OpConditional,
	":":    OpConditional,
}

// operators is sorted by descending length so the first prefix hit is the longest match.
var operators = func() []string {
	out := make([]string, 0, len(operatorGroups))
	for op := range operatorGroups {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// MatchOperator returns the longest operator that prefixes s.
func MatchOperator(s string) (string, bool) {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op, true
		}
	}
	return "", false
}

// LookupOperator returns the group of an operator.
func LookupOperator(op string) (OperatorGroup, bool) {
	g, ok := operatorGroups[op]
	return g, ok
}

// Operators returns the operator table in matching order. The slice is a copy.
func Operators() []string {
	return append([]string(nil), operators...)
}

package charclass

// Type is the primary classification of a code unit.
type Type string

const (
	Letter      Type = "letter"
	Digit       Type = "digit"
	Operator    Type = "operator"
	Punctuation Type = "punctuation"
	Whitespace  Type = "whitespace"
	Symbol      Type = "symbol"
	Accented    Type = "accented"
	Other       Type = "other"
	Control     Type = "control"
)

// Category is a coarser grouping with its own precedence.
type Category string

const (
	CatAlphabetic  Category = "alphabetic"
	CatNumeric     Category = "numeric"
	CatOperator    Category = "operator"
	CatDelimiter   Category = "delimiter"
	CatWhitespace  Category = "whitespace"
	CatSymbol      Category = "symbol"
	CatUnicode     Category = "unicode"
	CatControl     Category = "control"
	CatPunctuation Category = "punctuation"
)

// Role tags the structural part a unit usually plays in code.
type Role string

const (
	RoleWordStart           Role = "word-start"
	RoleWordContinuation    Role = "word-continuation"
	RoleNumericLiteral      Role = "numeric-literal"
	RoleBlockOpen           Role = "block-open"
	RoleBlockClose          Role = "block-close"
	RoleExpressionOpen      Role = "expression-open"
	RoleExpressionClose     Role = "expression-close"
	RoleStatementTerminator Role = "statement-terminator"
	RoleSeparator           Role = "separator"
	RoleAssignment          Role = "assignment"
	RoleStructural          Role = "structural"
)

// MaxCodePoint is the last valid Unicode code point.
const MaxCodePoint = 0x10FFFF

// ContextRadius is how many units on each side go into Character.Context.
const ContextRadius = 5

// Character is the classified description of one code unit.
type Character struct {
	Value       string // raw bytes of the unit
	Display     string // visible stand-in for whitespace/control units
	Type        Type
	Subtype     string
	Category    Category
	Position    int // unit index, from 0
	Offset      int // byte offset
	Line        int // 1-based
	Column      int // 1-based, in units
	CodePoint   rune
	Unicode     string // "U+0041"
	Hex         string // "0x41"
	Binary      string // "01000001"
	Description string
	Valid       bool
	Context     string
	Role        Role
}

// IsLineBreak reports whether the unit advances the line counter.
func (c *Character) IsLineBreak() bool {
	return c.CodePoint == '\n'
}

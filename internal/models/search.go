package models

// Comparison is a price filter operator accepted by item search.
type Comparison int

const (
	CompareNone Comparison = iota
	LessThan
	LessOrEqual
	Equal
	GreaterOrEqual
	GreaterThan
)

// ParseComparison decodes a comparison symbol. "=>" is an alias of ">=" and
// "=<" an alias of "<=".
func ParseComparison(symbol string) (Comparison, bool) {
	switch symbol {
	case "<":
		return LessThan, true
	case "<=", "=<":
		return LessOrEqual, true
	case "=":
		return Equal, true
	case ">=", "=>":
		return GreaterOrEqual, true
	case ">":
		return GreaterThan, true
	}
	return CompareNone, false
}

// SQL returns the operator used in a WHERE clause.
func (c Comparison) SQL() string {
	switch c {
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "="
	case GreaterOrEqual:
		return ">="
	case GreaterThan:
		return ">"
	}
	return ""
}

func (c Comparison) String() string {
	switch c {
	case LessThan:
		return "LessThan"
	case LessOrEqual:
		return "LessOrEqual"
	case Equal:
		return "Equal"
	case GreaterOrEqual:
		return "GreaterOrEqual"
	case GreaterThan:
		return "GreaterThan"
	}
	return "None"
}

package errors

// Error code constants for expression compilation.
// E100-E199: expression grammar errors
const (
	CodeEmptyExpression   = "E100"
	CodeUnbalancedBracket = "E101"
)

// Package expr compiles SCPI command expressions such as
// "SYSTem:ERRor[:NEXT]" into their minimal and maximal spellings and into
// a matcher that recognizes every legal abbreviation of the command.
//
// Grammar recap: uppercase letters are mandatory, a run of lowercase
// letters extends a keyword and may be truncated at any point, and a
// balanced [ ] zone marks an optional segment. A leading colon is
// cosmetic and "*IDN"-style short commands carry a literal '*'.
package expr

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/scpi-lang/scpi/compiler/errors"
)

// Compiled is the derived form of one command expression. It is immutable
// once built; callers share instances freely across goroutines.
type Compiled struct {
	Expression string         // the original grammar string
	Min        string         // shortest legal spelling, uppercased
	Max        string         // fully spelled-out form, uppercased
	Pattern    *regexp.Regexp // case-insensitive matcher for all abbreviations
}

// Match reports whether name is a legal spelling of the command.
func (c *Compiled) Match(name string) bool {
	return c.Pattern.MatchString(name)
}

// Compile validates an expression and derives its minimal form, maximal
// form, and abbreviation pattern.
func Compile(expression string) (*Compiled, error) {
	if err := Validate(expression); err != nil {
		return nil, err
	}

	min, max := MinMax(expression)

	// PatternString ends with $ but, unlike a Python-style match, Go's
	// MatchString does not anchor at the start on its own.
	pattern := regexp.MustCompile("(?i)^" + PatternString(expression))

	return &Compiled{
		Expression: expression,
		Min:        min,
		Max:        max,
		Pattern:    pattern,
	}, nil
}

// Validate checks an expression for grammar violations that would compile
// into a wrong matcher: empty input and unbalanced brackets.
func Validate(expression string) error {
	if expression == "" {
		return errors.NewExprError(errors.CodeEmptyExpression, "empty command expression", expression, 0)
	}

	depth := 0
	for i, r := range expression {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return errors.NewExprError(errors.CodeUnbalancedBracket, "unmatched ']'", expression, i)
			}
		}
	}
	if depth > 0 {
		return errors.NewExprError(errors.CodeUnbalancedBracket, "unmatched '['", expression, len(expression)-1)
	}

	return nil
}

// MinMax derives the shortest and longest spellings of a command
// expression. The minimal form drops every optional zone and every
// lowercase extension; the maximal form keeps everything but the
// brackets. Both are uppercased with any leading colon stripped.
//
//	MinMax("SYSTem:ERRor[:NEXT]") == ("SYST:ERR", "SYSTEM:ERROR:NEXT")
//
// The caller is expected to have validated the expression; unbalanced
// brackets produce an unspecified result rather than an error.
func MinMax(expression string) (string, string) {
	var min strings.Builder
	depth := 0
	for _, r := range expression {
		switch {
		case unicode.IsLower(r):
			continue
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth > 0:
			// Everything inside an optional zone is absent from the
			// minimal form, mandatory letters included.
		default:
			min.WriteRune(r)
		}
	}

	max := strings.NewReplacer("[", "", "]", "").Replace(expression)
	max = strings.ToUpper(max)

	return strings.TrimPrefix(min.String(), ":"), strings.TrimPrefix(max, ":")
}

// PatternString builds the regular expression source recognizing every
// legal abbreviation of the expression: each [ ] zone and each lowercase
// run becomes an optional group, '*' and ':' are escaped as literals, and
// the whole pattern allows one cosmetic leading colon and is anchored at
// the end.
//
//	PatternString("SYSTem:ERRor[:NEXT]") == `\:?SYST(EM)?\:ERR(OR)?(\:NEXT)?$`
func PatternString(expression string) string {
	var out strings.Builder
	out.WriteString(`\:?`)

	lowZone := false
	for _, r := range expression {
		lower := unicode.IsLower(r)
		if !lower && lowZone {
			// A ']' also terminates the run; its own group close
			// follows below.
			out.WriteString(")?")
			lowZone = false
		}

		switch {
		case r == '[':
			out.WriteString("(")
		case r == ']':
			out.WriteString(")?")
		case lower:
			if !lowZone {
				out.WriteString("(")
				lowZone = true
			}
			out.WriteRune(unicode.ToUpper(r))
		case r == '*' || r == ':':
			out.WriteString(`\`)
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}

	if lowZone {
		out.WriteString(")?")
	}

	out.WriteString("$")
	return out.String()
}

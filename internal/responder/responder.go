// Package responder implements the scripted pseudo-AI collaborator: a
// keyword matcher over canned responses, with a tiny arithmetic fast path.
// It holds no state; feature gating and progress accrual happen in the
// caller.
package responder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var mathPattern = regexp.MustCompile(`(-?\d+)\s*([+\-*/])\s*(-?\d+)`)

// DefaultReply is returned when no pattern matches.
const DefaultReply = "I can help with math calculations, formulas and equations. Please refine your question."

// ProcessQuery matches the query against the known patterns and returns a
// canned response. Matching is case-insensitive.
func ProcessQuery(query string) string {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "how much is") || strings.Contains(lower, "calculate"):
		return answerArithmetic(query)
	case strings.Contains(lower, "quadratic"):
		return "To solve a quadratic equation ax²+bx+c=0 use: x = (-b ± √(b²-4ac)) / 2a"
	case strings.Contains(lower, "pythagor") || strings.Contains(lower, "hypotenuse"):
		return "Pythagorean theorem: a² + b² = c², where c is the hypotenuse of a right triangle"
	case strings.Contains(lower, "circle area") || strings.Contains(lower, "area of a circle"):
		return "The area of a circle is S = πr², where r is the radius"
	case strings.Contains(lower, "sphere volume") || strings.Contains(lower, "volume of a sphere"):
		return "The volume of a sphere is V = 4/3πr³, where r is the radius"
	case strings.Contains(lower, "fourier"):
		return "The Fourier transform decomposes a function into frequency components. For discrete signals: X[k] = Σ x[n]·e^(-i2πkn/N)"
	case strings.Contains(lower, "laplace"):
		return "Laplace transform: F(s) = ∫ f(t)e^(-st) dt, where s is a complex variable"
	default:
		return DefaultReply
	}
}

func answerArithmetic(query string) string {
	m := mathPattern.FindStringSubmatch(query)
	if m == nil {
		return `Please specify the expression, e.g. "how much is 5 + 3"`
	}

	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	op := m[2]

	var result string
	switch op {
	case "+":
		result = strconv.Itoa(a + b)
	case "-":
		result = strconv.Itoa(a - b)
	case "*":
		result = strconv.Itoa(a * b)
	case "/":
		if b == 0 {
			result = "error: division by zero"
		} else {
			result = strconv.FormatFloat(float64(a)/float64(b), 'f', -1, 64)
		}
	}

	return fmt.Sprintf("Result: %d %s %d = %s", a, op, b, result)
}

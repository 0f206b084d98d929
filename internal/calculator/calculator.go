// Package calculator implements the arithmetic collaborator: plain binary
// operations, the scientific function set, and the canned premium formula
// actions. It is stateless; gating and reward accrual happen in the caller.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrDivideByZero     = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Evaluate computes a <op> b for op in + - * /.
func Evaluate(a float64, op string, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// Scientific applies a named unary function. Trigonometric functions take
// and return degrees.
func Scientific(fn string, v float64) (float64, error) {
	switch fn {
	case "sin":
		return math.Sin(v * math.Pi / 180), nil
	case "cos":
		return math.Cos(v * math.Pi / 180), nil
	case "tan":
		return math.Tan(v * math.Pi / 180), nil
	case "asin":
		return math.Asin(v) * 180 / math.Pi, nil
	case "acos":
		return math.Acos(v) * 180 / math.Pi, nil
	case "atan":
		return math.Atan(v) * 180 / math.Pi, nil
	case "log":
		return math.Log10(v), nil
	case "ln":
		return math.Log(v), nil
	case "sqrt":
		return math.Sqrt(v), nil
	case "exp":
		return math.Exp(v), nil
	case "factorial":
		return Factorial(v), nil
	case "abs":
		return math.Abs(v), nil
	case "square":
		return v * v, nil
	case "cube":
		return v * v * v, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, fn)
	}
}

// Factorial computes n! for non-negative integers; other inputs yield NaN.
func Factorial(n float64) float64 {
	if n < 0 || n != math.Trunc(n) {
		return math.NaN()
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// ProFormula returns the canned confirmation for a Pro-tier formula action.
func ProFormula(formula string) string {
	switch formula {
	case "quadratic":
		return "Quadratic equation solved"
	case "pythagoras":
		return "Pythagorean theorem applied"
	case "circle-area":
		return "Circle area computed"
	case "sphere-volume":
		return "Sphere volume computed"
	default:
		return "Pro formula executed"
	}
}

// ProPlusFormula returns the canned confirmation for a Pro+ formula action.
func ProPlusFormula(formula string) string {
	switch formula {
	case "fourier":
		return "Fourier transform"
	case "laplace":
		return "Laplace transform"
	case "differential":
		return "Differential equations"
	case "quantum":
		return "Quantum computation"
	default:
		return "Pro+ formula executed"
	}
}

// FormatResult renders a numeric result the way the display does: integers
// without a decimal point, everything else in minimal form.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

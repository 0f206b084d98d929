package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessQuery_Arithmetic(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"addition", "how much is 5 + 3", "Result: 5 + 3 = 8"},
		{"multiplication", "calculate 4 * 6", "Result: 4 * 6 = 24"},
		{"division", "how much is 7 / 2", "Result: 7 / 2 = 3.5"},
		{"division by zero", "calculate 1 / 0", "Result: 1 / 0 = error: division by zero"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProcessQuery(tc.query))
		})
	}
}

func TestProcessQuery_MissingExpression(t *testing.T) {
	got := ProcessQuery("how much is a lot plus a little")
	assert.Contains(t, got, "specify the expression")
}

func TestProcessQuery_Keywords(t *testing.T) {
	assert.Contains(t, ProcessQuery("solve a QUADRATIC equation"), "ax²+bx+c=0")
	assert.Contains(t, ProcessQuery("what is the hypotenuse?"), "Pythagorean")
	assert.Contains(t, ProcessQuery("area of a circle please"), "πr²")
	assert.Contains(t, ProcessQuery("volume of a sphere"), "4/3πr³")
	assert.Contains(t, ProcessQuery("explain Fourier"), "frequency components")
	assert.Contains(t, ProcessQuery("explain laplace"), "F(s)")
}

func TestProcessQuery_Fallback(t *testing.T) {
	assert.Equal(t, DefaultReply, ProcessQuery("tell me a joke"))
}

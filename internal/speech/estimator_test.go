package speech

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDurationMs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty text hits floor", "", 800},
		{"whitespace only hits floor", "   \t  ", 800},
		{"single word hits floor", "hola", 800},
		{"two words hit floor", "buenas noches", 1100},
		{"five words", "one two three four five", 2300},
		{"ten words", "a b c d e f g h i j", 4300},
		{"markers alone hit floor", "::::::", 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDurationMs(tt.text))
		})
	}
}

func TestEstimateDurationMs_MarkersSplitWords(t *testing.T) {
	// "hello::world" is two words once the marker is stripped, not one
	// token and not a mid-word split.
	assert.Equal(t, EstimateDurationMs("hello world"), EstimateDurationMs("hello::world"))
	assert.Equal(t, 1100, EstimateDurationMs("hello::world"))
}

func TestEstimateDurationMs_MarkersDoNotChangeDuration(t *testing.T) {
	plain := "os escucho perfectamente buenas noches a todos"
	marked := "os escucho perfectamente...:: buenas noches:: a todos"

	// Markers and punctuation attached to words leave the count intact.
	assert.Equal(t, EstimateDurationMs(plain), EstimateDurationMs(marked))
}

func TestEstimateDurationMs_MonotonicInWordCount(t *testing.T) {
	prev := 0
	for words := 0; words <= 50; words++ {
		text := strings.TrimSpace(strings.Repeat("palabra ", words))
		got := EstimateDurationMs(text)
		assert.GreaterOrEqual(t, got, prev, "duration must not decrease at %d words", words)
		assert.GreaterOrEqual(t, got, 800)
		prev = got
	}
}

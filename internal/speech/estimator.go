// Package speech estimates spoken duration for text-only utterances.
package speech

import (
	"math"
	"strings"

	"github.com/pscheid92/avatarbridge/internal/domain"
)

const (
	wordsPerSecond = 2.5 // 150 words/minute speaking rate
	settleMillis   = 300 // trailing animation settle time
	floorMillis    = 800 // shortest perceptible viewer event
)

// EstimateDurationMs converts a plain-text utterance into an estimated spoken
// duration in milliseconds. Pause markers are replaced with a space before the
// word count, so "hello::world" counts as two words. Pure and deterministic;
// empty or whitespace-only text yields the floor.
func EstimateDurationMs(text string) int {
	clean := strings.ReplaceAll(text, domain.PauseMarker, " ")
	words := len(strings.Fields(clean))

	seconds := float64(words) / wordsPerSecond
	ms := int(math.Round(seconds*1000)) + settleMillis
	if ms < floorMillis {
		return floorMillis
	}
	return ms
}

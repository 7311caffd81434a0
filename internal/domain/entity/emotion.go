package entity

import (
	"errors"
	"fmt"
)

// Emotion is one of the five canonical emotion labels
type Emotion string

const (
	EmotionAnger   Emotion = "anger"
	EmotionDisgust Emotion = "disgust"
	EmotionFear    Emotion = "fear"
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
)

// AllEmotions returns the five canonical labels in the fixed scan order
// used for dominant-emotion selection. The first maximum wins on ties.
func AllEmotions() [5]Emotion {
	return [5]Emotion{EmotionAnger, EmotionDisgust, EmotionFear, EmotionJoy, EmotionSadness}
}

// ErrIncompleteScores indicates a score set missing one of the canonical labels
var ErrIncompleteScores = errors.New("incomplete emotion scores")

// EmotionScores maps each canonical emotion label to a score in [0.0, 1.0]
type EmotionScores map[Emotion]float64

// EmotionResult holds a full score set plus the derived dominant emotion.
// A nil Scores map marks the invalid-input sentinel.
type EmotionResult struct {
	Scores   EmotionScores `json:"scores"`
	Dominant Emotion       `json:"dominant_emotion"`
}

// NewEmotionResult validates that scores carries exactly the five canonical
// labels and derives the dominant emotion with a deterministic scan.
func NewEmotionResult(scores EmotionScores) (*EmotionResult, error) {
	for _, e := range AllEmotions() {
		if _, ok := scores[e]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrIncompleteScores, e)
		}
	}

	dominant := EmotionAnger
	best := scores[EmotionAnger]
	for _, e := range AllEmotions() {
		if scores[e] > best {
			dominant = e
			best = scores[e]
		}
	}

	return &EmotionResult{
		Scores:   scores,
		Dominant: dominant,
	}, nil
}

// InvalidInputResult builds the sentinel result signaling that the remote
// service rejected the input. All scores and the dominant emotion are absent.
func InvalidInputResult() *EmotionResult {
	return &EmotionResult{}
}

// IsInvalidInput returns true if the result is the invalid-input sentinel
func (r *EmotionResult) IsInvalidInput() bool {
	return r.Scores == nil
}

// Score returns the score for a single label. The second return value is
// false for the sentinel result or an unknown label.
func (r *EmotionResult) Score(e Emotion) (float64, bool) {
	if r.Scores == nil {
		return 0, false
	}
	score, ok := r.Scores[e]
	return score, ok
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/entity"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/service"
)

// Error definitions for emotion usecase
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUpstreamMalformed   = errors.New("emotion service returned a malformed response")
	ErrUpstreamUnavailable = errors.New("emotion service unavailable")
)

// DetectInput represents the input for emotion detection
type DetectInput struct {
	Text string `json:"text"`
}

// DetectOutput represents the output for emotion detection. All fields are
// null for the invalid-input sentinel, so a rejected input stays
// distinguishable from a legitimate zero-score result.
type DetectOutput struct {
	Anger           *float64 `json:"anger"`
	Disgust         *float64 `json:"disgust"`
	Fear            *float64 `json:"fear"`
	Joy             *float64 `json:"joy"`
	Sadness         *float64 `json:"sadness"`
	DominantEmotion *string  `json:"dominant_emotion"`
}

// IsInvalidInput returns true if the output carries the sentinel
func (o *DetectOutput) IsInvalidInput() bool {
	return o.DominantEmotion == nil
}

// EmotionUsecase defines the interface for emotion detection business logic
type EmotionUsecase interface {
	Detect(ctx context.Context, input *DetectInput) (*DetectOutput, error)
}

type emotionUsecase struct {
	detector service.EmotionDetector
}

// NewEmotionUsecase creates a new emotion usecase
func NewEmotionUsecase(detector service.EmotionDetector) EmotionUsecase {
	return &emotionUsecase{detector: detector}
}

// Detect forwards the text to the remote emotion service. Empty or
// otherwise unusable text is not validated locally; the remote service's
// rejection comes back as the all-null sentinel output.
func (u *emotionUsecase) Detect(ctx context.Context, input *DetectInput) (*DetectOutput, error) {
	if input == nil {
		return nil, ErrInvalidRequest
	}

	result, err := u.detector.Detect(ctx, input.Text)
	if err != nil {
		if errors.Is(err, service.ErrMalformedResponse) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return toDetectOutput(result), nil
}

func toDetectOutput(r *entity.EmotionResult) *DetectOutput {
	if r.IsInvalidInput() {
		return &DetectOutput{}
	}

	score := func(e entity.Emotion) *float64 {
		s := r.Scores[e]
		return &s
	}
	dominant := string(r.Dominant)

	return &DetectOutput{
		Anger:           score(entity.EmotionAnger),
		Disgust:         score(entity.EmotionDisgust),
		Fear:            score(entity.EmotionFear),
		Joy:             score(entity.EmotionJoy),
		Sadness:         score(entity.EmotionSadness),
		DominantEmotion: &dominant,
	}
}

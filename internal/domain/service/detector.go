package service

import (
	"context"
	"errors"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/entity"
)

// ErrMalformedResponse signals a success response from the remote service
// whose body does not match the expected prediction shape. It must never be
// coerced into the invalid-input sentinel.
var ErrMalformedResponse = errors.New("malformed emotion service response")

// EmotionDetector defines the interface for remote emotion classification
type EmotionDetector interface {
	// Detect classifies a single text and returns the emotion scores with
	// the derived dominant emotion. Input rejected by the remote service
	// yields the invalid-input sentinel result, not an error.
	Detect(ctx context.Context, text string) (*entity.EmotionResult, error)
}

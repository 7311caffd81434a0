package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/entity"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/service"
)

// WatsonDetector adapts WatsonClient to the EmotionDetector interface
type WatsonDetector struct {
	client *WatsonClient
}

// NewWatsonDetector creates a new WatsonDetector
func NewWatsonDetector(client *WatsonClient) service.EmotionDetector {
	return &WatsonDetector{client: client}
}

// Detect classifies a single text. A 400 from the service becomes the
// invalid-input sentinel; a success response missing predictions or any of
// the five canonical labels fails hard with service.ErrMalformedResponse.
func (d *WatsonDetector) Detect(ctx context.Context, text string) (*entity.EmotionResult, error) {
	resp, err := d.client.EmotionPredict(ctx, text)
	if err != nil {
		if errors.Is(err, ErrInvalidText) {
			return entity.InvalidInputResult(), nil
		}
		return nil, err
	}

	if len(resp.EmotionPredictions) == 0 {
		return nil, fmt.Errorf("%w: empty prediction array", service.ErrMalformedResponse)
	}

	// Only the first prediction record is consulted
	predicted := resp.EmotionPredictions[0].Emotion

	scores := make(entity.EmotionScores, len(predicted))
	for label, score := range predicted {
		scores[entity.Emotion(label)] = score
	}

	result, err := entity.NewEmotionResult(scores)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrMalformedResponse, err)
	}

	return result, nil
}

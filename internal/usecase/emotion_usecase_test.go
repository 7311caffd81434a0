package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/entity"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/service"
)

// MockEmotionDetector is a mock implementation of EmotionDetector
type MockEmotionDetector struct {
	mock.Mock
}

func (m *MockEmotionDetector) Detect(ctx context.Context, text string) (*entity.EmotionResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmotionResult), args.Error(1)
}

func TestEmotionUsecase_Detect(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockDetector := new(MockEmotionDetector)
		uc := NewEmotionUsecase(mockDetector)

		result, err := entity.NewEmotionResult(entity.EmotionScores{
			entity.EmotionAnger:   0.01,
			entity.EmotionDisgust: 0.02,
			entity.EmotionFear:    0.03,
			entity.EmotionJoy:     0.9,
			entity.EmotionSadness: 0.04,
		})
		require.NoError(t, err)

		mockDetector.On("Detect", mock.Anything, "I am glad this happened").Return(result, nil)

		output, err := uc.Detect(context.Background(), &DetectInput{Text: "I am glad this happened"})

		assert.NoError(t, err)
		require.NotNil(t, output)
		assert.False(t, output.IsInvalidInput())
		require.NotNil(t, output.DominantEmotion)
		assert.Equal(t, "joy", *output.DominantEmotion)
		require.NotNil(t, output.Joy)
		assert.Equal(t, 0.9, *output.Joy)
		assert.Equal(t, 0.01, *output.Anger)
		mockDetector.AssertExpectations(t)
	})

	t.Run("rejected input yields all-null output", func(t *testing.T) {
		mockDetector := new(MockEmotionDetector)
		uc := NewEmotionUsecase(mockDetector)

		mockDetector.On("Detect", mock.Anything, "").Return(entity.InvalidInputResult(), nil)

		output, err := uc.Detect(context.Background(), &DetectInput{Text: ""})

		assert.NoError(t, err)
		require.NotNil(t, output)
		assert.True(t, output.IsInvalidInput())
		assert.Nil(t, output.Anger)
		assert.Nil(t, output.Disgust)
		assert.Nil(t, output.Fear)
		assert.Nil(t, output.Joy)
		assert.Nil(t, output.Sadness)
		assert.Nil(t, output.DominantEmotion)
	})

	t.Run("malformed upstream response maps to ErrUpstreamMalformed", func(t *testing.T) {
		mockDetector := new(MockEmotionDetector)
		uc := NewEmotionUsecase(mockDetector)

		detectErr := fmt.Errorf("%w: empty prediction array", service.ErrMalformedResponse)
		mockDetector.On("Detect", mock.Anything, "text").Return(nil, detectErr)

		output, err := uc.Detect(context.Background(), &DetectInput{Text: "text"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, ErrUpstreamMalformed)
	})

	t.Run("transport failure maps to ErrUpstreamUnavailable", func(t *testing.T) {
		mockDetector := new(MockEmotionDetector)
		uc := NewEmotionUsecase(mockDetector)

		mockDetector.On("Detect", mock.Anything, "text").Return(nil, errors.New("connection refused"))

		output, err := uc.Detect(context.Background(), &DetectInput{Text: "text"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("nil input is invalid", func(t *testing.T) {
		mockDetector := new(MockEmotionDetector)
		uc := NewEmotionUsecase(mockDetector)

		output, err := uc.Detect(context.Background(), nil)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

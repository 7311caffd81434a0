package handler

import (
	"fmt"
	"strconv"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/usecase"
)

// InvalidTextMessage is the fixed user-facing message for rejected input
const InvalidTextMessage = "Invalid text! Please try again!"

// FormatDetectMessage renders the user-facing sentence for a detection
// output. Rejected input gets the fixed rejection message.
func FormatDetectMessage(output *usecase.DetectOutput) string {
	if output.IsInvalidInput() {
		return InvalidTextMessage
	}

	return fmt.Sprintf(
		"For the given statement, the system response is 'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and 'sadness': %s. The dominant emotion is %s.",
		formatScore(output.Anger),
		formatScore(output.Disgust),
		formatScore(output.Fear),
		formatScore(output.Joy),
		formatScore(output.Sadness),
		*output.DominantEmotion,
	)
}

func formatScore(score *float64) string {
	return strconv.FormatFloat(*score, 'g', -1, 64)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/usecase"
)

// EmotionHandler handles emotion detection HTTP requests
type EmotionHandler struct {
	emotionUC usecase.EmotionUsecase
}

// NewEmotionHandler creates a new emotion handler
func NewEmotionHandler(emotionUC usecase.EmotionUsecase) *EmotionHandler {
	return &EmotionHandler{emotionUC: emotionUC}
}

// DetectResponse is the detection payload: the five scores, the dominant
// emotion, and the formatted presentation message.
type DetectResponse struct {
	*usecase.DetectOutput
	Message string `json:"message"`
}

// Detect handles POST /api/v1/emotions/detect
func (h *EmotionHandler) Detect(c *gin.Context) {
	var input usecase.DetectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	h.detect(c, &input)
}

// DetectQuery handles GET /api/v1/emotions/detect?text=...
func (h *EmotionHandler) DetectQuery(c *gin.Context) {
	// Emptiness is not validated locally; the remote service's 400 comes
	// back as the sentinel result.
	input := usecase.DetectInput{Text: c.Query("text")}

	h.detect(c, &input)
}

func (h *EmotionHandler) detect(c *gin.Context, input *usecase.DetectInput) {
	output, err := h.emotionUC.Detect(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, DetectResponse{
		DetectOutput: output,
		Message:      FormatDetectMessage(output),
	})
}

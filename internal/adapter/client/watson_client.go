package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/service"
)

// ModelIDHeader is the metadata header naming the emotion model to run
const ModelIDHeader = "grpc-metadata-mm-model-id"

// ErrInvalidText signals the remote service rejected the input (HTTP 400).
// This is a designed business outcome, not a fault.
var ErrInvalidText = errors.New("text rejected by emotion service")

// EmotionPredictRequest represents a request to the emotion service
type EmotionPredictRequest struct {
	RawDocument RawDocument `json:"raw_document"`
}

// RawDocument wraps the text to classify
type RawDocument struct {
	Text string `json:"text"`
}

// EmotionPrediction represents a single prediction record
type EmotionPrediction struct {
	Emotion map[string]float64 `json:"emotion"`
}

// EmotionPredictResponse represents the response from the emotion service
type EmotionPredictResponse struct {
	EmotionPredictions []EmotionPrediction `json:"emotionPredictions"`
}

// WatsonClient is an HTTP client for the remote emotion-prediction service
type WatsonClient struct {
	endpointURL string
	modelID     string
	httpClient  *http.Client
}

// NewWatsonClient creates a new emotion service client
func NewWatsonClient(endpointURL, modelID string, timeout time.Duration) *WatsonClient {
	return &WatsonClient{
		endpointURL: endpointURL,
		modelID:     modelID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// EmotionPredict sends a single text for emotion classification.
// A 400 from the service maps to ErrInvalidText; any other non-200 status
// or transport failure is returned as-is with no retry.
func (c *WatsonClient) EmotionPredict(ctx context.Context, text string) (*EmotionPredictResponse, error) {
	reqBody := EmotionPredictRequest{
		RawDocument: RawDocument{Text: text},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ModelIDHeader, c.modelID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidText
	}

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("emotion service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("emotion service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result EmotionPredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrMalformedResponse, err)
	}

	return &result, nil
}

// Ping probes the emotion service endpoint. Any HTTP response counts as
// reachable; only a transport failure is an error.
func (c *WatsonClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpointURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emotion service unreachable: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

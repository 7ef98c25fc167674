package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mindmate/mindmate/internal/domain"
)

// DefaultBaseURL is the hosted HuggingFace inference endpoint.
const DefaultBaseURL = "https://api-inference.huggingface.co"

// Model identifiers for the two classification heads.
const (
	sentimentModel = "finiteautomata/bertweet-base-sentiment-analysis"
	emotionModel   = "j-hartmann/emotion-english-distilroberta-base"
)

// sentimentLabels maps the sentiment model's output classes onto the
// domain vocabulary.
var sentimentLabels = map[string]string{
	"POS": domain.SentimentPositive,
	"NEG": domain.SentimentNegative,
	"NEU": domain.SentimentNeutral,
}

// HuggingFace classifies text by calling two hosted text-classification
// models over HTTP: one for sentiment polarity, one for fine-grained
// emotion.
type HuggingFace struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewHuggingFace creates a classifier backed by the HuggingFace
// inference API. baseURL may be empty to use the hosted endpoint.
func NewHuggingFace(token, baseURL string) (*HuggingFace, error) {
	if token == "" {
		return nil, fmt.Errorf("huggingface api token not set")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HuggingFace{
		token:   token,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}, nil
}

// Classify runs both models and returns the top-scoring label from each.
func (h *HuggingFace) Classify(ctx context.Context, text string) (Result, error) {
	sentiment, err := h.classifyWith(ctx, sentimentModel, text)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment model: %w", err)
	}
	if mapped, ok := sentimentLabels[sentiment.Label]; ok {
		sentiment.Label = mapped
	}

	emotion, err := h.classifyWith(ctx, emotionModel, text)
	if err != nil {
		return Result{}, fmt.Errorf("emotion model: %w", err)
	}

	result := Result{Sentiment: sentiment, Emotion: emotion}
	if err := validate(result); err != nil {
		return Result{}, err
	}
	return result, nil
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// classifyWith calls one text-classification model and picks the
// highest-scored label from its distribution.
func (h *HuggingFace) classifyWith(ctx context.Context, model, text string) (domain.Score, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return domain.Score{}, fmt.Errorf("marshal request: %w", err)
	}

	url := h.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.Score{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.client.Do(req)
	if err != nil {
		return domain.Score{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Score{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.Score{}, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseScores(respBody)
}

// parseScores extracts the argmax label from a text-classification
// response. The API nests the label distribution one level deep.
func parseScores(body []byte) (domain.Score, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err != nil {
		// Some deployments return the distribution unnested.
		var flat []labelScore
		if err := json.Unmarshal(body, &flat); err != nil {
			return domain.Score{}, fmt.Errorf("parse response: %w (body: %s)", err, body)
		}
		nested = [][]labelScore{flat}
	}

	if len(nested) == 0 || len(nested[0]) == 0 {
		return domain.Score{}, fmt.Errorf("empty classification response")
	}

	best := nested[0][0]
	for _, ls := range nested[0][1:] {
		if ls.Score > best.Score {
			best = ls
		}
	}

	return domain.Score{Label: best.Label, Score: best.Score}, nil
}

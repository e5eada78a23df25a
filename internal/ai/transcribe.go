package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultTranscriptionBaseURL = "https://api.openai.com"

// Transcriber converts recorded audio to text through an OpenAI-style
// /v1/audio/transcriptions endpoint. Used by voice food logging.
type Transcriber struct {
	log        *slog.Logger
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewTranscriber builds a transcriber. An empty key disables it.
func NewTranscriber(logger *slog.Logger, apiKey, baseURL string) *Transcriber {
	return &Transcriber{
		log:     logger,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   "whisper-1",
	}
}

// Enabled reports whether an API key is configured.
func (t *Transcriber) Enabled() bool {
	return strings.TrimSpace(t.APIKey) != ""
}

// Transcribe sends the audio payload and returns the recognised text.
// Any failure yields an empty fallback with OK=false.
func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename string) Result[string] {
	text, err := t.transcribe(ctx, audio, filename)
	if err != nil {
		t.log.Warn("transcription failed", slog.String("error", err.Error()))
		return fallback("")
	}
	return ok(text)
}

func (t *Transcriber) transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if !t.Enabled() {
		return "", fmt.Errorf("missing transcription API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(t.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultTranscriptionBaseURL
	}
	httpClient := t.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copy audio into form: %w", err)
	}
	if err := form.WriteField("model", t.Model); err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}

	url := baseURL + "/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute transcription request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transcription request failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	if strings.TrimSpace(parsed.Text) == "" {
		return "", fmt.Errorf("empty transcription")
	}
	return parsed.Text, nil
}

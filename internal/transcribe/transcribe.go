// Package transcribe is the speech-to-text collaborator: it ships a saved
// audio file to a whisper-style HTTP service and returns the plain English
// transcript. The extraction pipeline consumes the text and never sees this
// package's errors beyond "transcription failed".
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"voice-catalog-go/internal/logger"
)

// Transcriber converts an audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Client posts audio to WHISPER_URL's /transcribe endpoint. Server errors
// are retried with exponential backoff; 4xx responses are permanent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.New(),
	}
}

func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	log := c.log.WithField("audio_path", audioPath)

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio into request: %w", err)
	}
	_ = w.WriteField("language", "en")
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	payload := body.Bytes()
	var parsed transcriptionResponse
	var lastErr error

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", w.FormDataContentType())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("transcription server error: %s", string(respBody))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("transcription request rejected: status %d: %s", resp.StatusCode, string(respBody))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			lastErr = fmt.Errorf("failed to decode transcription response: %w", err)
			return backoff.Permanent(lastErr)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		log.WithError(lastErr).Error("transcription failed")
		if lastErr != nil {
			return "", lastErr
		}
		return "", err
	}

	log.WithField("transcript_len", len(parsed.Text)).Info("transcription completed")
	return strings.TrimSpace(parsed.Text), nil
}

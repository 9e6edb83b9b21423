package service

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
	"time"

	"github.com/rs/zerolog/log"
)

// Detection is one text region recognized by the OCR engine. Box holds the
// corner coordinates of the bounding region as reported by the engine.
type Detection struct {
	Box        [][2]float64 `json:"box"`
	Text       string       `json:"text"`
	Confidence float64      `json:"confidence"`
}

// OCRService calls an EasyOCR-compatible sidecar over HTTP. The engine owns
// reading order, noise filtering and locale handling; this client only moves
// bytes and decodes detections.
type OCRService struct {
	baseURL string
	locale  string
	client  *http.Client
}

// NewOCRService creates an OCRService for the given sidecar base URL and
// recognition locale.
func NewOCRService(baseURL, locale string) *OCRService {
	return &OCRService{
		baseURL: baseURL,
		locale:  locale,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ReadText uploads the image at imagePath and returns the engine's detections
// in reported order. Any transport or engine failure is fatal to the request.
func (s *OCRService) ReadText(ctx context.Context, imagePath string) ([]Detection, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("failed to build form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to copy image into form: %w", err)
	}
	if err := writer.WriteField("locale", s.locale); err != nil {
		return nil, fmt.Errorf("failed to write locale field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/readtext", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OCR request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OCR engine returned status %d: %s", resp.StatusCode, string(body))
	}

	var detections []Detection
	if err := json.Unmarshal(body, &detections); err != nil {
		return nil, fmt.Errorf("failed to decode OCR response: %w", err)
	}

	log.Debug().Int("detections", len(detections)).Str("image", filepath.Base(imagePath)).Msg("OCR completed")
	return detections, nil
}

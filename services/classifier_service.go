package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
)

// ClassifierService forwards food photos to the external recognition model.
type ClassifierService struct {
	baseURL string
	client  *http.Client
}

func NewClassifierService(baseURL string) *ClassifierService {
	return &ClassifierService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// predictResponse is the model's wire format.
type predictResponse struct {
	PredictedClass int     `json:"predicted_class"`
	Confidence     float64 `json:"confidence"`
}

// Analysis is a resolved classifier result.
type Analysis struct {
	FoodName   string  `json:"foodName"`
	Confidence float64 `json:"confidence"`
}

// Classify streams the image to the model's /predict endpoint as multipart
// field "file" and resolves the returned class index to a food name.
func (s *ClassifierService) Classify(ctx context.Context, filename string, image io.Reader) (*Analysis, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperrors.Internal("failed to build classifier request", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, apperrors.Internal("failed to read uploaded image", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.Internal("failed to build classifier request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/predict", &body)
	if err != nil {
		return nil, apperrors.Internal("failed to build classifier request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("food recognition service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, apperrors.Upstream("food recognition service unavailable",
			fmt.Errorf("classifier returned %d: %s", resp.StatusCode, string(raw)))
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, apperrors.Upstream("food recognition service returned an invalid response", err)
	}

	return &Analysis{
		FoodName:   foodClassName(pr.PredictedClass),
		Confidence: pr.Confidence,
	}, nil
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bglit/lunch-backend/internal/dto"
)

var ErrUploadNotConfigured = errors.New("image upload is not configured")

// UploadService pushes restaurant logo images to Cloudinary via the unsigned
// upload-preset flow.
type UploadService struct {
	cloudName string
	preset    string
	client    *http.Client
}

func NewUploadService(cloudName, preset string) *UploadService {
	return &UploadService{
		cloudName: cloudName,
		preset:    preset,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *UploadService) Upload(ctx context.Context, filename string, file io.Reader) (*dto.UploadData, error) {
	if s.cloudName == "" || s.preset == "" {
		return nil, ErrUploadNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.preset); err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}

	uploadURL := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse cloudinary response: %w", err)
	}

	return &dto.UploadData{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

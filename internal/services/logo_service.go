package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bglit/lunch-backend/internal/dto"
)

var (
	ErrLogoNotConfigured = errors.New("logo API key not configured")
	ErrLogoNotFound      = errors.New("no logo found for this restaurant")
)

// LogoService looks up company logos by name via API Ninjas.
type LogoService struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewLogoService(apiKey string) *LogoService {
	return &LogoService{
		apiURL: "https://api.api-ninjas.com/v1/logo",
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *LogoService) Lookup(ctx context.Context, name string) (*dto.LogoData, error) {
	if s.apiKey == "" {
		return nil, ErrLogoNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?name="+url.QueryEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call logo API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo API returned status %d", resp.StatusCode)
	}

	var results []struct {
		Image  string `json:"image"`
		Name   string `json:"name"`
		Ticker string `json:"ticker"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to parse logo response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrLogoNotFound
	}

	data := &dto.LogoData{
		Image: results[0].Image,
		Name:  results[0].Name,
	}
	if results[0].Ticker != "" {
		data.Ticker = &results[0].Ticker
	}
	return data, nil
}

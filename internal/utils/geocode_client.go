package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GeocodeClient — клиент обратного геокодирования (Nominatim-совместимый API).
type GeocodeClient struct {
	baseURL string
	client  *http.Client
}

func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ReverseGeocode возвращает человекочитаемый адрес, best-effort:
// при любой ошибке отдаёт координаты текстом.
func (g *GeocodeClient) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%.4f, %.4f", lat, lon)

	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", g.baseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fallback
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var result struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.DisplayName == "" {
		return fallback
	}
	return result.DisplayName
}

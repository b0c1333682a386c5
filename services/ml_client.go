package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Predictor is the boundary to the external ML service. Handlers depend on
// this interface so tests can substitute a fake.
type Predictor interface {
	Forecast(days []int, sales []float64) ([]float64, error)
	RecommendFood(orders []string) ([]string, error)
}

// MLClient calls the forecasting/recommendation service over HTTP.
type MLClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewMLClient() *MLClient {
	baseURL := os.Getenv("ML_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}

	return &MLClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (c *MLClient) post(path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Post(c.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Forecast sends recent sales and returns the predicted next days.
func (c *MLClient) Forecast(days []int, sales []float64) ([]float64, error) {
	payload := map[string]interface{}{
		"days":  days,
		"sales": sales,
	}
	var result struct {
		Forecast []float64 `json:"next_7_days_forecast"`
	}
	if err := c.post("/forecast", payload, &result); err != nil {
		return nil, err
	}
	return result.Forecast, nil
}

// RecommendFood sends historical item names and returns recommended dishes.
func (c *MLClient) RecommendFood(orders []string) ([]string, error) {
	payload := map[string]interface{}{
		"orders": orders,
	}
	var result struct {
		Recommended []string `json:"recommended_food"`
	}
	if err := c.post("/recommend_ml", payload, &result); err != nil {
		return nil, err
	}
	return result.Recommended, nil
}

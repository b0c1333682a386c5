package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLClientForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "days")
		assert.Contains(t, payload, "sales")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"next_7_days_forecast": []float64{120.5, 130, 125, 140, 150, 145, 160},
		})
	}))
	defer srv.Close()

	client := &MLClient{BaseURL: srv.URL, HTTPClient: srv.Client()}

	forecast, err := client.Forecast([]int{1, 2, 3, 4, 5}, []float64{100, 110, 105, 120, 115})
	require.NoError(t, err)
	assert.Len(t, forecast, 7)
	assert.Equal(t, 120.5, forecast[0])
}

func TestMLClientRecommendFood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommend_ml", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"recommended_food": []string{"Pad Thai", "Green Curry"},
		})
	}))
	defer srv.Close()

	client := &MLClient{BaseURL: srv.URL, HTTPClient: srv.Client()}

	food, err := client.RecommendFood([]string{"Pad Thai", "Spring Rolls"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pad Thai", "Green Curry"}, food)
}

func TestMLClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &MLClient{BaseURL: srv.URL, HTTPClient: srv.Client()}

	_, err := client.Forecast([]int{1}, []float64{100})
	assert.ErrorContains(t, err, "status 500")

	_, err = client.RecommendFood([]string{"anything"})
	assert.ErrorContains(t, err, "status 500")
}

func TestMLClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &MLClient{
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
	}

	_, err := client.Forecast([]int{1}, []float64{100})
	assert.Error(t, err)
}

func TestMLClientUnreachable(t *testing.T) {
	client := &MLClient{
		BaseURL:    "http://127.0.0.1:1",
		HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
	}

	_, err := client.RecommendFood([]string{"anything"})
	assert.Error(t, err)
}

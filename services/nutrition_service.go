package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
)

const nutritionixEndpoint = "https://trackapi.nutritionix.com/v2/natural/nutrients"

// NutritionService resolves natural-language food queries against the
// Nutritionix database.
type NutritionService struct {
	endpoint string
	appID    string
	appKey   string
	client   *http.Client
}

func NewNutritionService(appID, appKey string) *NutritionService {
	return &NutritionService{
		endpoint: nutritionixEndpoint,
		appID:    appID,
		appKey:   appKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NutritionInfo is the normalized nutrition facts for one food.
type NutritionInfo struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingQty  float64 `json:"serving_qty"`
	ServingUnit string  `json:"serving_unit"`
}

// nutrientsResponse is the upstream wire format; only the fields we extract.
type nutrientsResponse struct {
	Foods []struct {
		FoodName          string  `json:"food_name"`
		Calories          float64 `json:"nf_calories"`
		Protein           float64 `json:"nf_protein"`
		TotalCarbohydrate float64 `json:"nf_total_carbohydrate"`
		TotalFat          float64 `json:"nf_total_fat"`
		ServingQty        float64 `json:"serving_qty"`
		ServingUnit       string  `json:"serving_unit"`
	} `json:"foods"`
}

// Lookup issues a natural-language nutrition query and extracts the first
// matching food's macro fields.
func (s *NutritionService) Lookup(ctx context.Context, query string) (*NutritionInfo, error) {
	if query == "" {
		return nil, apperrors.Validation("query is required")
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, apperrors.Internal("failed to marshal nutrition query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Internal("failed to build nutrition request", err)
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("nutrition service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, apperrors.Upstream("nutrition service unavailable",
			fmt.Errorf("nutritionix returned %d: %s", resp.StatusCode, string(raw)))
	}

	var nr nutrientsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, apperrors.Upstream("nutrition service returned an invalid response", err)
	}
	if len(nr.Foods) == 0 {
		return nil, apperrors.NotFound("no nutrition match for query")
	}

	f := nr.Foods[0]
	return &NutritionInfo{
		Name:        f.FoodName,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.TotalCarbohydrate,
		Fat:         f.TotalFat,
		ServingQty:  f.ServingQty,
		ServingUnit: f.ServingUnit,
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LocationService wraps the public Vietnamese administrative-units API
// backing the province → district → commune dropdown cascade. Lookups are
// not cached; every selection change re-fetches.
type LocationService struct {
	baseURL string
	client  *http.Client
}

func NewLocationService(baseURL string) *LocationService {
	return &LocationService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type LocationUnit struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type provinceDetail struct {
	Code      int            `json:"code"`
	Name      string         `json:"name"`
	Districts []LocationUnit `json:"districts"`
}

type districtDetail struct {
	Code  int            `json:"code"`
	Name  string         `json:"name"`
	Wards []LocationUnit `json:"wards"`
}

func (s *LocationService) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("location api: unexpected status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (s *LocationService) Provinces(ctx context.Context) ([]LocationUnit, error) {
	var provinces []LocationUnit
	if err := s.get(ctx, "/p", &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

func (s *LocationService) Districts(ctx context.Context, provinceCode int) ([]LocationUnit, error) {
	var detail provinceDetail
	if err := s.get(ctx, fmt.Sprintf("/p/%d?depth=2", provinceCode), &detail); err != nil {
		return nil, err
	}
	return detail.Districts, nil
}

func (s *LocationService) Communes(ctx context.Context, districtCode int) ([]LocationUnit, error) {
	var detail districtDetail
	if err := s.get(ctx, fmt.Sprintf("/d/%d?depth=2", districtCode), &detail); err != nil {
		return nil, err
	}
	return detail.Wards, nil
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locationServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/p", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"code":1,"name":"Thành phố Hà Nội"},{"code":79,"name":"Thành phố Hồ Chí Minh"}]`))
	})
	mux.HandleFunc("/p/79", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("depth"))
		w.Write([]byte(`{"code":79,"name":"Thành phố Hồ Chí Minh","districts":[{"code":760,"name":"Quận 1"}]}`))
	})
	mux.HandleFunc("/d/760", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":760,"name":"Quận 1","wards":[{"code":26734,"name":"Phường Bến Nghé"}]}`))
	})
	return httptest.NewServer(mux)
}

func TestLocationCascade(t *testing.T) {
	srv := locationServer(t)
	defer srv.Close()
	svc := NewLocationService(srv.URL)
	ctx := context.Background()

	provinces, err := svc.Provinces(ctx)
	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, "Thành phố Hà Nội", provinces[0].Name)

	districts, err := svc.Districts(ctx, 79)
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, "Quận 1", districts[0].Name)

	communes, err := svc.Communes(ctx, 760)
	require.NoError(t, err)
	require.Len(t, communes, 1)
	assert.Equal(t, "Phường Bến Nghé", communes[0].Name)
}

func TestLocationNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	svc := NewLocationService(srv.URL)

	_, err := svc.Provinces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tommeech/ecommerce-dashboard/pkg/config"
)

func testConfig(url string) config.WeatherConfig {
	return config.WeatherConfig{
		APIURL:    url,
		Latitude:  50.6053,
		Longitude: -3.5952,
		Daily:     "temperature_2m_max",
		Timezone:  "GMT",
	}
}

func TestClient_DailyArchive(t *testing.T) {
	const body = `{"daily":{"time":["2023-01-01","2023-01-02"],"temperature_2m_max":[9.1,7.4]}}`

	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL + "/v1/archive"))
	data, err := client.DailyArchive(context.Background(), "2023-01-01", "2023-01-02")
	require.NoError(t, err)

	assert.JSONEq(t, body, string(data))
	require.NotNil(t, got)
	assert.Equal(t, "/v1/archive", got.URL.Path)

	q := got.URL.Query()
	assert.Equal(t, "50.6053", q.Get("latitude"))
	assert.Equal(t, "-3.5952", q.Get("longitude"))
	assert.Equal(t, "2023-01-01", q.Get("start_date"))
	assert.Equal(t, "2023-01-02", q.Get("end_date"))
	assert.Equal(t, "temperature_2m_max", q.Get("daily"))
	assert.Equal(t, "GMT", q.Get("timezone"))
}

func TestClient_DailyArchive_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":true,"reason":"Parameter 'start_date' is invalid"}`))
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
				assert.Contains(t, statusErr.Body, "start_date")
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(testConfig(srv.URL)).DailyArchive(context.Background(), "2023-01-01", "2023-01-02")
			tt.check(t, err)
		})
	}
}

func TestClient_DailyArchive_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(testConfig(url)).DailyArchive(context.Background(), "2023-01-01", "2023-01-02")
	assert.Error(t, err)
}

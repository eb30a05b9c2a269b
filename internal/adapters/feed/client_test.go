package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"symposiums": [{"number": 1, "title_es": "Música y exilio", "coordinators": ["A. Pérez"]}],
			"sessions": [{"symposium_number": 1, "room_name": "Aula 1", "day": "2026-09-28", "start_time": "09:00", "end_time": "11:00"}]
		}`))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client())
	doc, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, doc.Symposiums, 1)
	assert.Equal(t, "Música y exilio", doc.Symposiums[0].TitleES)
	require.Len(t, doc.Sessions, 1)
	assert.Equal(t, 1, doc.Sessions[0].SymposiumNumber)
	assert.Equal(t, "Aula 1", doc.Sessions[0].RoomName)
}

func TestHTTPFetcher_Fetch_non_200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client())
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestHTTPFetcher_Fetch_bad_json(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client())
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

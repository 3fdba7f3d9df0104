package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/upstream"
)

func TestProgress(t *testing.T) {
	var sessionCalls, latestCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "enr-1", r.URL.Query().Get("enrollment_id"))

		switch r.URL.Path {
		case "/admin/class-sessions":
			sessionCalls++
			if r.URL.Query().Get("page") == "1" {
				w.Write([]byte(`{"data":[
					{"enrollment_id":"enr-1","id":1,"session_index":1,"total_sessions":8,"rating":4},
					{"enrollment_id":"enr-1","id":2,"session_index":2,"total_sessions":8,"rating":null}
				],"total":3,"page":1,"per_page":2,"total_pages":2}`))
				return
			}
			w.Write([]byte(`{"data":[
				{"enrollment_id":"enr-1","id":3,"session_index":3,"total_sessions":8,"rating":5}
			],"total":3,"page":2,"per_page":2,"total_pages":2}`))
		case "/admin/class-sessions/latest-completed":
			latestCalls++
			// view kedua boleh datang sebagai array polos
			w.Write([]byte(`[{"enrollment_id":"enr-1","session_index":2}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"tidak ditemukan"}`))
		}
	}))
	defer srv.Close()

	svc := NewClassSessionService(upstream.NewClient(srv.URL, 2*time.Second), 10)
	progress, err := svc.Progress(context.Background(), "enr-1")
	require.NoError(t, err)

	assert.Equal(t, 2, sessionCalls, "dua halaman sesi")
	assert.Equal(t, 1, latestCalls)
	assert.Equal(t, "enr-1", progress.EnrollmentID)
	assert.Equal(t, 8, progress.TotalSessions)
	assert.Equal(t, 2, progress.LatestCompletedIndex)
	require.NotNil(t, progress.AverageRating)
	assert.Equal(t, 4.5, *progress.AverageRating)
}

func TestProgressUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"backend sedang gangguan"}`))
	}))
	defer srv.Close()

	svc := NewClassSessionService(upstream.NewClient(srv.URL, 2*time.Second), 10)
	_, err := svc.Progress(context.Background(), "enr-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend sedang gangguan")
}

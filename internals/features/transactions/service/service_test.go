package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/features/transactions/dto"
	"tutorku_backend/internals/upstream"
)

func TestTransactionServiceList(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/transactions", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"rows":[
			{"id":1,"amount":50000,"status":"lunas","murid":{"nama":"Sari"}}
		],"count":1}`))
	}))
	defer srv.Close()

	svc := NewTransactionService(upstream.NewClient(srv.URL, 2*time.Second))
	svc.clock = func() time.Time { return fixedNow }

	page, err := svc.List(context.Background(), dto.TransactionFilter{
		StatusLabel: "Success",
		Range:       "30D",
		Page:        1,
		PerPage:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "lunas", gotQuery["status"])
	assert.Equal(t, "2025-05-17", gotQuery["date_from"])
	assert.Equal(t, "2025-06-15", gotQuery["date_to"])
	assert.NotContains(t, gotQuery, "category")

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sari", page.Items[0].StudentName)
	assert.Equal(t, "Success", page.Items[0].TransactionStatusLabel)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestTransactionServiceRecap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/transactions/recap", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Write([]byte(`{"bulanan":{"juni":{"kelas":2,"modul":1}}}`))
	}))
	defer srv.Close()

	svc := NewTransactionService(upstream.NewClient(srv.URL, 2*time.Second))
	svc.clock = func() time.Time { return fixedNow }

	recap, err := svc.Recap(context.Background(), map[string]string{"year": "2025"})
	require.NoError(t, err)

	require.Len(t, recap.Monthly, 12)
	jun := recap.Monthly[5]
	assert.Equal(t, 6, jun.Month)
	assert.Equal(t, 3, jun.Count)
}

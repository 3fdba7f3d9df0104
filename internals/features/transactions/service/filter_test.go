package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/features/transactions/dto"
)

var fixedNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func TestBuildParams(t *testing.T) {
	t.Run("filter Success 30 hari", func(t *testing.T) {
		f := dto.TransactionFilter{
			StatusLabel: "Success",
			Category:    "ALL",
			Range:       "30D",
			Page:        1,
			PerPage:     10,
		}
		params := BuildParams(f, fixedNow, 10)
		assert.Equal(t, map[string]string{
			"page":      "1",
			"limit":     "10",
			"status":    "lunas",
			"date_from": "2025-05-17",
			"date_to":   "2025-06-15",
		}, params)
	})

	t.Run("range ALL membuang batas tanggal eksplisit", func(t *testing.T) {
		f := dto.TransactionFilter{
			Range:    "ALL",
			DateFrom: "2025-01-01",
			DateTo:   "2025-02-01",
		}
		params := BuildParams(f, fixedNow, 10)
		assert.NotContains(t, params, "date_from")
		assert.NotContains(t, params, "date_to")
	})

	t.Run("shortcut 90 hari menghasilkan rentang 89 hari inklusif", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{Range: "90D"}, fixedNow, 10)

		from, err := time.Parse("2006-01-02", params["date_from"])
		require.NoError(t, err)
		to, err := time.Parse("2006-01-02", params["date_to"])
		require.NoError(t, err)
		assert.Equal(t, 89, int(to.Sub(from).Hours()/24))
	})

	t.Run("batas eksplisit valid menang atas ekspansi shortcut", func(t *testing.T) {
		f := dto.TransactionFilter{Range: "30D", DateFrom: "2025-03-01", DateTo: "2025-03-31"}
		params := BuildParams(f, fixedNow, 10)
		assert.Equal(t, "2025-03-01", params["date_from"])
		assert.Equal(t, "2025-03-31", params["date_to"])
	})

	t.Run("tanggal rusak didegradasi, bukan Invalid Date", func(t *testing.T) {
		f := dto.TransactionFilter{Range: "30D", DateFrom: "31-12-2025"}
		params := BuildParams(f, fixedNow, 10)
		// kedua batas diekspansi dari shortcut karena tidak ada batas valid
		assert.Equal(t, "2025-05-17", params["date_from"])
		assert.Equal(t, "2025-06-15", params["date_to"])
	})

	t.Run("pencarian mengisi q dan keyword sekaligus", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{Search: "  budi  "}, fixedNow, 10)
		assert.Equal(t, "budi", params["q"])
		assert.Equal(t, "budi", params["keyword"])
	})

	t.Run("pencarian kosong tidak diserialisasi", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{Search: "   "}, fixedNow, 10)
		assert.NotContains(t, params, "q")
		assert.NotContains(t, params, "keyword")
	})

	t.Run("label Canceled tidak mengirim key status", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{StatusLabel: "Canceled"}, fixedNow, 10)
		assert.NotContains(t, params, "status")
	})

	t.Run("chip kategori dipetakan ke kode mentah", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{Category: "COURSE"}, fixedNow, 10)
		assert.Equal(t, "kelas", params["category"])

		params = BuildParams(dto.TransactionFilter{Category: "ALL"}, fixedNow, 10)
		assert.NotContains(t, params, "category")
	})

	t.Run("paging invalid jatuh ke default", func(t *testing.T) {
		params := BuildParams(dto.TransactionFilter{Page: -3, PerPage: 0}, fixedNow, 25)
		assert.Equal(t, "1", params["page"])
		assert.Equal(t, "25", params["limit"])
	})
}

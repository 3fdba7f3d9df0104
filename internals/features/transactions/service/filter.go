// file: internals/features/transactions/service/filter.go
package service

import (
	"strconv"
	"strings"
	"time"

	"tutorku_backend/internals/constants"
	"tutorku_backend/internals/features/transactions/dto"
)

const dateLayout = "2006-01-02"

// BuildParams menerjemahkan filter layar menjadi parameter query upstream.
// Tidak pernah gagal: field yang tidak bisa dipakai didegradasi jadi
// "key tidak dikirim", bukan NaN/Invalid Date di request keluar.
func BuildParams(f dto.TransactionFilter, now time.Time, defaultLimit int) map[string]string {
	params := map[string]string{}

	page := f.Page
	if page < 1 {
		page = 1
	}
	per := f.PerPage
	if per < 1 {
		per = defaultLimit
	}
	if per < 1 {
		per = 10
	}
	params["page"] = strconv.Itoa(page)
	params["limit"] = strconv.Itoa(per)

	// dua nama untuk pencarian: backend lama pakai q, yang baru keyword.
	// Selalu kirim keduanya, jangan pernah salah satu saja.
	if q := strings.TrimSpace(f.Search); q != "" {
		params["q"] = q
		params["keyword"] = q
	}

	if label := f.StatusLabel; label != "" && label != constants.FilterAll {
		if raw, ok := ToRawStatus(label); ok {
			params["status"] = raw
		}
		// label tanpa kode mentah (Canceled): jangan kirim tebakan
	}

	// chip ALL berarti tanpa filter; absennya key, bukan string "ALL".
	if chip := f.Category; chip != "" && chip != constants.FilterAll {
		if raw, ok := ToRawCategory(chip); ok {
			params["category"] = raw
		}
	}

	applyDateRange(params, f, now)

	for k, v := range params {
		if strings.TrimSpace(v) == "" {
			delete(params, k)
		}
	}
	return params
}

// applyDateRange: range ALL membuang batas tanggal; shortcut 30D/90D
// diekspansi jadi date_from/date_to eksplisit (dipotong ke tengah malam).
// Batas eksplisit yang valid menang atas hasil ekspansi.
func applyDateRange(params map[string]string, f dto.TransactionFilter, now time.Time) {
	rng := f.Range
	if rng == "" || rng == constants.FilterAll {
		return
	}

	var days int
	switch rng {
	case constants.RangeLast30:
		days = 29
	case constants.RangeLast90:
		days = 89
	default:
		return
	}

	from, fromOK := parseDate(f.DateFrom)
	to, toOK := parseDate(f.DateTo)
	if !fromOK && !toOK {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to, from = today, today.AddDate(0, 0, -days)
		fromOK, toOK = true, true
	}
	if fromOK {
		params["date_from"] = from.Format(dateLayout)
	}
	if toOK {
		params["date_to"] = to.Format(dateLayout)
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

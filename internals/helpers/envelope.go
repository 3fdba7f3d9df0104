// file: internals/helpers/envelope.go
package helper

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Backend marketplace mengirim list dalam beberapa bentuk envelope yang
// berbeda (masa migrasi API). Setiap bentuk ditangani satu matcher; urutan
// daftar ini adalah urutan precedence dan tidak boleh diubah:
//
//  1. array polos            [...]
//  2. data                   {"data": [...], meta opsional}
//  3. rows/count             {"rows": [...], "count": n}
//  4. users                  {"users": [...]}
//
// Envelope yang tidak dikenal menghasilkan Page kosong, bukan error, supaya
// satu response aneh hanya menurunkan satu layar.
type envelopeMatcher struct {
	name  string
	match func(raw []byte, fallback Paging) (Page[json.RawMessage], bool)
}

var envelopeMatchers = []envelopeMatcher{
	{name: "array", match: matchBareArray},
	{name: "data", match: matchDataEnvelope},
	{name: "rows", match: matchRowsEnvelope},
	{name: "users", match: matchUsersEnvelope},
}

// AdaptListEnvelope menormalkan envelope list mentah menjadi Page.
// fallback dipakai untuk meta yang tidak dikirim backend (page/per_page
// mengikuti request yang sedang berjalan).
func AdaptListEnvelope(raw []byte, fallback Paging) Page[json.RawMessage] {
	for _, m := range envelopeMatchers {
		if page, ok := m.match(raw, fallback); ok {
			return page
		}
	}
	return NewPage[json.RawMessage](nil, 0, fallback.Page, fallback.PerPage)
}

func matchBareArray(raw []byte, fallback Paging) (Page[json.RawMessage], bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Page[json.RawMessage]{}, false
	}
	var items []json.RawMessage
	if err := sonic.Unmarshal(trimmed, &items); err != nil {
		return Page[json.RawMessage]{}, false
	}
	return buildPage(items, nil, nil, nil, nil, fallback), true
}

func matchDataEnvelope(raw []byte, fallback Paging) (Page[json.RawMessage], bool) {
	var env struct {
		Data       []json.RawMessage `json:"data"`
		Total      *int              `json:"total"`
		Page       *int              `json:"page"`
		PerPage    *int              `json:"per_page"`
		TotalPages *int              `json:"total_pages"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return Page[json.RawMessage]{}, false
	}
	return buildPage(env.Data, env.Total, env.Page, env.PerPage, env.TotalPages, fallback), true
}

func matchRowsEnvelope(raw []byte, fallback Paging) (Page[json.RawMessage], bool) {
	var env struct {
		Rows  []json.RawMessage `json:"rows"`
		Count *int              `json:"count"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil || env.Rows == nil {
		return Page[json.RawMessage]{}, false
	}
	return buildPage(env.Rows, env.Count, nil, nil, nil, fallback), true
}

func matchUsersEnvelope(raw []byte, fallback Paging) (Page[json.RawMessage], bool) {
	var env struct {
		Users []json.RawMessage `json:"users"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil || env.Users == nil {
		return Page[json.RawMessage]{}, false
	}
	return buildPage(env.Users, nil, nil, nil, nil, fallback), true
}

// buildPage melengkapi meta yang hilang: total dari len(items), page/per_page
// dari request berjalan, total_pages disintesis kecuali backend mengirimnya.
func buildPage(items []json.RawMessage, total, page, perPage, totalPages *int, fallback Paging) Page[json.RawMessage] {
	if items == nil {
		items = []json.RawMessage{}
	}

	t := len(items)
	if total != nil && *total >= 0 {
		t = *total
	}

	p := fallback.Page
	if page != nil && *page > 0 {
		p = *page
	}

	per := fallback.PerPage
	if perPage != nil && *perPage > 0 {
		per = *perPage
	}
	if per <= 0 {
		per = len(items)
	}

	out := NewPage(items, t, p, per)
	if totalPages != nil && *totalPages >= 0 {
		out.TotalPages = *totalPages
	}
	return out
}

// file: internals/helpers/flex.go
package helper

import (
	"strconv"
	"strings"
)

// Backend marketplace tidak konsisten soal tipe: angka bisa datang sebagai
// number atau string, id bisa number atau string. Tipe di bawah menoleransi
// semuanya dan mendegradasi nilai aneh ke kosong/nil, tidak pernah error,
// supaya satu field rusak tidak menggagalkan decode seluruh record.

type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	f.Value = nil
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		f.Value = &n
	}
	return nil
}

// Or mengembalikan nilainya, atau def kalau kosong.
func (f FlexFloat) Or(def float64) float64 {
	if f.Value == nil {
		return def
	}
	return *f.Value
}

// Int membulatkan ke int dengan default 0.
func (f FlexFloat) Int() int {
	return int(f.Or(0))
}

type FlexString struct {
	Value string
}

func (s *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		s.Value = ""
		return nil
	}
	if raw[0] == '"' {
		if unquoted, err := strconv.Unquote(raw); err == nil {
			s.Value = unquoted
			return nil
		}
	}
	// number / bool literal dipakai apa adanya
	s.Value = raw
	return nil
}

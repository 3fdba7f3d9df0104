// file: internals/features/transactions/dto/transaction_dto.go
package dto

import (
	"strings"

	"tutorku_backend/internals/constants"
)

// ========================================================
// 1) Filter layar daftar transaksi (query DTO)
// ========================================================

type TransactionFilter struct {
	Search      string `query:"q" json:"q" validate:"omitempty,max=160"`
	StatusLabel string `query:"status_label" json:"status_label" validate:"omitempty,oneof=ALL Pending Success Failed Expired Canceled"`
	Category    string `query:"category" json:"category" validate:"omitempty,oneof=ALL COURSE MODULE"`
	Range       string `query:"range" json:"range" validate:"omitempty,oneof=ALL 30D 90D"`
	DateFrom    string `query:"date_from" json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo      string `query:"date_to" json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Page        int    `query:"page" json:"page" validate:"omitempty,min=1"`
	PerPage     int    `query:"per_page" json:"per_page" validate:"omitempty,min=1,max=200"`
}

func (f *TransactionFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	f.StatusLabel = strings.TrimSpace(f.StatusLabel)
	f.Category = strings.ToUpper(strings.TrimSpace(f.Category))
	f.Range = strings.ToUpper(strings.TrimSpace(f.Range))
	f.DateFrom = strings.TrimSpace(f.DateFrom)
	f.DateTo = strings.TrimSpace(f.DateTo)

	if f.StatusLabel == "" {
		f.StatusLabel = constants.FilterAll
	}
	if f.Category == "" {
		f.Category = constants.FilterAll
	}
	if f.Range == "" {
		f.Range = constants.FilterAll
	}
}

// ========================================================
// 2) Transaksi kanonis (hasil adaptasi payload upstream)
// ========================================================

type TransactionResponse struct {
	TransactionID          string  `json:"transaction_id"`
	TransactionAmount      float64 `json:"transaction_amount"`
	TransactionDate        string  `json:"transaction_date"`
	TransactionStatus      string  `json:"transaction_status"`       // kode mentah
	TransactionStatusLabel string  `json:"transaction_status_label"` // cache tampilan, selalu turunan kode mentah
	TransactionCategory    string  `json:"transaction_category"`
	StudentName            string  `json:"student_name"`
	ProductName            string  `json:"product_name"`
	PromoName              *string `json:"promo_name,omitempty"`
}

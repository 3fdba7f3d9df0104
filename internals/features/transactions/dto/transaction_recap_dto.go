// file: internals/features/transactions/dto/transaction_recap_dto.go
package dto

// MonthlyPoint: satu titik grafik bulanan; unik per (year, month).
type MonthlyPoint struct {
	Year        int `json:"year"`
	Month       int `json:"month"` // 1-12
	Count       int `json:"count"`
	CourseCount int `json:"course_count"`
	ModuleCount int `json:"module_count"`
	PromoCount  int `json:"promo_count"`
}

// RecapSummary: angka agregat layar rekap. Rekap tanpa data adalah state
// valid (semua nol, monthly kosong), bukan error.
type RecapSummary struct {
	TotalSum              float64            `json:"total_sum"`
	PerCategorySum        map[string]float64 `json:"per_category_sum"`
	PerCategoryCount      map[string]int     `json:"per_category_count"`
	PromoTransactionCount int                `json:"promo_transaction_count"`
	Monthly               []MonthlyPoint     `json:"monthly"`
}

// EmptyRecap: rekap kosong yang aman dirender.
func EmptyRecap() RecapSummary {
	return RecapSummary{
		PerCategorySum:   map[string]float64{},
		PerCategoryCount: map[string]int{},
		Monthly:          []MonthlyPoint{},
	}
}

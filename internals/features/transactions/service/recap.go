// file: internals/features/transactions/service/recap.go
package service

import (
	"time"

	"github.com/bytedance/sonic"

	"tutorku_backend/internals/constants"
	"tutorku_backend/internals/features/transactions/dto"
	helper "tutorku_backend/internals/helpers"
)

// Nama bulan di payload lama upstream: set tetap dan berurutan, bukan
// string bebas. Index+1 = nomor bulan kalender.
var monthKeys = [12]string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

type rawRecapEnvelope struct {
	Recap   *rawRecap                `json:"recap"`
	Rekap   *rawRecap                `json:"rekap"` // alias lama
	Bulanan map[string]rawMonthEntry `json:"bulanan"`
	Monthly map[string]rawMonthEntry `json:"monthly"`
}

type rawRecap struct {
	TotalSum              helper.FlexFloat            `json:"total_sum"`
	PerCategorySum        map[string]helper.FlexFloat `json:"per_category_sum"`
	PerCategoryCount      map[string]helper.FlexFloat `json:"per_category_count"`
	PromoTransactionCount helper.FlexFloat            `json:"promo_transaction_count"`
	Monthly               []rawMonthlyPoint           `json:"monthly"`
}

type rawMonthlyPoint struct {
	Year        helper.FlexFloat `json:"year"`
	Month       helper.FlexFloat `json:"month"`
	Count       helper.FlexFloat `json:"count"`
	CourseCount helper.FlexFloat `json:"course_count"`
	ModuleCount helper.FlexFloat `json:"module_count"`
	PromoCount  helper.FlexFloat `json:"promo_count"`
}

type rawMonthEntry struct {
	Kelas         helper.FlexFloat  `json:"kelas"`
	Modul         helper.FlexFloat  `json:"modul"`
	Promo         helper.FlexFloat  `json:"promo"`
	KelasDanModul *helper.FlexFloat `json:"kelas_dan_modul"`
}

// BuildRecap membangun RecapSummary dari payload rekap mentah.
// Jalur pilihan: objek rekap siap pakai dari upstream. Jalur cadangan:
// breakdown bulanan ber-key nama bulan. Tidak ada keduanya → rekap kosong,
// bukan error.
func BuildRecap(raw []byte, now time.Time) dto.RecapSummary {
	var env rawRecapEnvelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return dto.EmptyRecap()
	}

	recap := env.Recap
	if recap == nil {
		recap = env.Rekap
	}
	if recap != nil {
		return adaptRecapObject(recap)
	}

	breakdown := env.Bulanan
	if breakdown == nil {
		breakdown = env.Monthly
	}
	if len(breakdown) > 0 {
		return rebuildFromMonths(breakdown, now)
	}
	return dto.EmptyRecap()
}

func adaptRecapObject(r *rawRecap) dto.RecapSummary {
	out := dto.EmptyRecap()
	out.TotalSum = r.TotalSum.Or(0)
	out.PromoTransactionCount = r.PromoTransactionCount.Int()
	for k, v := range r.PerCategorySum {
		out.PerCategorySum[k] = v.Or(0)
	}
	for k, v := range r.PerCategoryCount {
		out.PerCategoryCount[k] = v.Int()
	}
	for _, p := range r.Monthly {
		out.Monthly = append(out.Monthly, dto.MonthlyPoint{
			Year:        p.Year.Int(),
			Month:       p.Month.Int(),
			Count:       p.Count.Int(),
			CourseCount: p.CourseCount.Int(),
			ModuleCount: p.ModuleCount.Int(),
			PromoCount:  p.PromoCount.Int(),
		})
	}
	return out
}

// rebuildFromMonths merekonstruksi rekap dari breakdown ber-key nama bulan.
// Key di luar dua belas nama bulan berarti payload tidak dikenali: gagal
// tertutup ke rekap kosong, jangan diam-diam membuang sebagian data.
func rebuildFromMonths(breakdown map[string]rawMonthEntry, now time.Time) dto.RecapSummary {
	known := map[string]bool{}
	for _, k := range monthKeys {
		known[k] = true
	}
	for k := range breakdown {
		if !known[k] {
			return dto.EmptyRecap()
		}
	}

	out := dto.EmptyRecap()
	year := now.Year()
	for i, key := range monthKeys {
		entry := breakdown[key] // bulan absen → semua nol
		course := entry.Kelas.Int()
		module := entry.Modul.Int()
		promo := entry.Promo.Int()

		count := course + module
		if entry.KelasDanModul != nil && entry.KelasDanModul.Value != nil {
			count = entry.KelasDanModul.Int()
		}

		out.Monthly = append(out.Monthly, dto.MonthlyPoint{
			Year:        year,
			Month:       i + 1,
			Count:       count,
			CourseCount: course,
			ModuleCount: module,
			PromoCount:  promo,
		})
		out.PerCategoryCount[constants.CategoryCourse] += course
		out.PerCategoryCount[constants.CategoryModule] += module
		out.PromoTransactionCount += promo
	}
	return out
}

// file: internals/features/transactions/service/vocabulary.go
package service

import "tutorku_backend/internals/constants"

// Kosakata status: total ke arah label (setiap kode mentah punya tepat satu
// label), parsial ke arah kode (label Canceled sengaja tidak punya kode —
// artinya "jangan filter by status", bukan error).

var labelByRawStatus = map[string]string{
	constants.StatusPending:    constants.LabelPending,
	constants.StatusLunas:      constants.LabelSuccess,
	constants.StatusGagal:      constants.LabelFailed,
	constants.StatusKadaluarsa: constants.LabelExpired,
}

var rawStatusByLabel = map[string]string{
	constants.LabelPending: constants.StatusPending,
	constants.LabelSuccess: constants.StatusLunas,
	constants.LabelFailed:  constants.StatusGagal,
	constants.LabelExpired: constants.StatusKadaluarsa,
	// LabelCanceled: tidak ada padanan mentah
}

// ToRawStatus me-resolve label ke kode mentah; ok=false berarti label tidak
// didukung backend dan key status tidak boleh dikirim.
func ToRawStatus(label string) (string, bool) {
	raw, ok := rawStatusByLabel[label]
	return raw, ok
}

// ToStatusLabel memetakan kode mentah ke label. Kode yang belum dikenal
// jatuh ke LabelUnknown, tidak panic — kosakata backend berevolusi sendiri.
func ToStatusLabel(raw string) string {
	if label, ok := labelByRawStatus[raw]; ok {
		return label
	}
	return constants.LabelUnknown
}

var rawCategoryByChip = map[string]string{
	constants.CategoryCourse: constants.CategoryRawCourse,
	constants.CategoryModule: constants.CategoryRawModule,
}

var chipByRawCategory = map[string]string{
	constants.CategoryRawCourse: constants.CategoryCourse,
	constants.CategoryRawModule: constants.CategoryModule,
}

func ToRawCategory(chip string) (string, bool) {
	raw, ok := rawCategoryByChip[chip]
	return raw, ok
}

func ToCategoryChip(raw string) string {
	if chip, ok := chipByRawCategory[raw]; ok {
		return chip
	}
	return raw
}

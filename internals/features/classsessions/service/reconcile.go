// file: internals/features/classsessions/service/reconcile.go
package service

import (
	"math"
	"sort"

	"tutorku_backend/internals/features/classsessions/dto"
)

// Reconcile menggabungkan dua view sesi yang di-paginate terpisah — semua
// sesi milik satu pendaftaran dan sesi selesai terakhirnya — menjadi satu
// angka progres.
//
// totalSessions memakai nilai terbesar antara total yang dilaporkan backend
// dan session_index terbesar yang terlihat; total lapor backend bisa basi.
// Pendaftaran tanpa sesi sama sekali adalah state valid: progres nol.
func Reconcile(enrollmentID string, allSessions, latestCompleted []dto.ClassSessionResponse) dto.EnrollmentProgress {
	progress := dto.EnrollmentProgress{EnrollmentID: enrollmentID}

	var matched []dto.ClassSessionResponse
	for _, s := range allSessions {
		if s.EnrollmentID == enrollmentID {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SessionIndex < matched[j].SessionIndex
	})

	var ratingSum float64
	rated := 0
	for _, s := range matched {
		if s.TotalSessions > progress.TotalSessions {
			progress.TotalSessions = s.TotalSessions
		}
		if s.SessionIndex > progress.TotalSessions {
			progress.TotalSessions = s.SessionIndex
		}
		if s.Rating != nil {
			ratingSum += *s.Rating
			rated++
		}
	}

	// rating absen bukan rating nol: tanpa satu pun rating, rata-rata nil
	if rated > 0 {
		avg := math.Round(ratingSum/float64(rated)*10) / 10
		progress.AverageRating = &avg
	}

	for _, s := range latestCompleted {
		if s.EnrollmentID == enrollmentID {
			progress.LatestCompletedIndex = s.SessionIndex
			break
		}
	}
	return progress
}

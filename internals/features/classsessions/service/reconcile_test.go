package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/features/classsessions/dto"
)

func ratingOf(v float64) *float64 { return &v }

func TestReconcile(t *testing.T) {
	t.Run("tanpa sesi: progres nol yang valid", func(t *testing.T) {
		out := Reconcile("enr-1", nil, nil)
		assert.Equal(t, "enr-1", out.EnrollmentID)
		assert.Zero(t, out.TotalSessions)
		assert.Zero(t, out.LatestCompletedIndex)
		assert.Nil(t, out.AverageRating)
	})

	t.Run("rating nil tidak ikut dirata-rata", func(t *testing.T) {
		sessions := []dto.ClassSessionResponse{
			{EnrollmentID: "enr-1", SessionIndex: 1, Rating: ratingOf(4)},
			{EnrollmentID: "enr-1", SessionIndex: 2, Rating: nil},
			{EnrollmentID: "enr-1", SessionIndex: 3, Rating: ratingOf(5)},
		}
		out := Reconcile("enr-1", sessions, nil)
		require.NotNil(t, out.AverageRating)
		assert.Equal(t, 4.5, *out.AverageRating)
	})

	t.Run("rata-rata dibulatkan satu desimal", func(t *testing.T) {
		sessions := []dto.ClassSessionResponse{
			{EnrollmentID: "enr-1", SessionIndex: 1, Rating: ratingOf(4)},
			{EnrollmentID: "enr-1", SessionIndex: 2, Rating: ratingOf(4)},
			{EnrollmentID: "enr-1", SessionIndex: 3, Rating: ratingOf(5)},
		}
		out := Reconcile("enr-1", sessions, nil)
		require.NotNil(t, out.AverageRating)
		assert.Equal(t, 4.3, *out.AverageRating)
	})

	t.Run("total memakai max dari lapor backend dan index terlihat", func(t *testing.T) {
		sessions := []dto.ClassSessionResponse{
			{EnrollmentID: "enr-1", SessionIndex: 10, TotalSessions: 8},
			{EnrollmentID: "enr-1", SessionIndex: 2, TotalSessions: 8},
		}
		out := Reconcile("enr-1", sessions, nil)
		assert.Equal(t, 10, out.TotalSessions) // total lapor backend basi
	})

	t.Run("sesi pendaftaran lain diabaikan", func(t *testing.T) {
		sessions := []dto.ClassSessionResponse{
			{EnrollmentID: "enr-1", SessionIndex: 1, Rating: ratingOf(3), TotalSessions: 4},
			{EnrollmentID: "enr-2", SessionIndex: 9, Rating: ratingOf(5), TotalSessions: 12},
		}
		latest := []dto.ClassSessionResponse{
			{EnrollmentID: "enr-2", SessionIndex: 9},
			{EnrollmentID: "enr-1", SessionIndex: 1},
		}
		out := Reconcile("enr-1", sessions, latest)
		assert.Equal(t, 4, out.TotalSessions)
		assert.Equal(t, 1, out.LatestCompletedIndex)
		require.NotNil(t, out.AverageRating)
		assert.Equal(t, 3.0, *out.AverageRating)
	})

	t.Run("belum ada sesi selesai: index nol", func(t *testing.T) {
		sessions := []dto.ClassSessionResponse{{EnrollmentID: "enr-1", SessionIndex: 1}}
		out := Reconcile("enr-1", sessions, []dto.ClassSessionResponse{{EnrollmentID: "enr-9", SessionIndex: 3}})
		assert.Zero(t, out.LatestCompletedIndex)
	})
}

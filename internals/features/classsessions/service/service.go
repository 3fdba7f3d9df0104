// file: internals/features/classsessions/service/service.go
package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"tutorku_backend/internals/features/classsessions/dto"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/upstream"
)

// perPage untuk walk materialisasi: besar supaya jumlah round-trip kecil.
const walkPerPage = 100

type ClassSessionService struct {
	api      *upstream.Client
	maxPages int
}

func NewClassSessionService(api *upstream.Client, maxPages int) *ClassSessionService {
	return &ClassSessionService{api: api, maxPages: maxPages}
}

// EnrollmentSessions mematerialisasi SEMUA sesi sebuah pendaftaran (walk
// seluruh halaman). Join progres di bawah tidak bisa diekspresikan sebagai
// satu query upstream, jadi dataset lengkap ditarik ke memori dulu.
func (s *ClassSessionService) EnrollmentSessions(ctx context.Context, enrollmentID string) ([]dto.ClassSessionResponse, error) {
	return s.walk(ctx, "/admin/class-sessions", enrollmentID)
}

// latestCompleted: view "sesi selesai terakhir per pendaftaran".
func (s *ClassSessionService) latestCompleted(ctx context.Context, enrollmentID string) ([]dto.ClassSessionResponse, error) {
	return s.walk(ctx, "/admin/class-sessions/latest-completed", enrollmentID)
}

func (s *ClassSessionService) walk(ctx context.Context, path, enrollmentID string) ([]dto.ClassSessionResponse, error) {
	return helper.WalkAll(ctx, s.maxPages, func(ctx context.Context, page int) (helper.Page[dto.ClassSessionResponse], error) {
		raw, err := s.api.Request(ctx, path, upstream.RequestOptions{Query: map[string]string{
			"enrollment_id": enrollmentID,
			"page":          strconv.Itoa(page),
			"limit":         strconv.Itoa(walkPerPage),
		}})
		if err != nil {
			return helper.Page[dto.ClassSessionResponse]{}, err
		}
		env := helper.AdaptListEnvelope(raw, helper.Paging{Page: page, PerPage: walkPerPage})
		return helper.MapPage(env, AdaptClassSession), nil
	})
}

// Progress menarik dua view sesi (masing-masing walk sekuensial) secara
// paralel, lalu merekonsiliasinya jadi satu angka progres.
func (s *ClassSessionService) Progress(ctx context.Context, enrollmentID string) (dto.EnrollmentProgress, error) {
	g, gctx := errgroup.WithContext(ctx)

	var all, latest []dto.ClassSessionResponse
	g.Go(func() error {
		var err error
		all, err = s.EnrollmentSessions(gctx, enrollmentID)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.latestCompleted(gctx, enrollmentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.EnrollmentProgress{}, err
	}

	return Reconcile(enrollmentID, all, latest), nil
}

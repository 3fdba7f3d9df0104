// file: internals/features/transactions/service/service.go
package service

import (
	"context"
	"strconv"
	"time"

	"tutorku_backend/internals/features/transactions/dto"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/upstream"
)

const defaultPerPage = 10

type TransactionService struct {
	api   *upstream.Client
	clock func() time.Time
}

func NewTransactionService(api *upstream.Client) *TransactionService {
	return &TransactionService{api: api, clock: time.Now}
}

// List mengambil satu halaman transaksi terfilter dari upstream dan
// menormalkannya ke bentuk kanonis.
func (s *TransactionService) List(ctx context.Context, f dto.TransactionFilter) (helper.Page[dto.TransactionResponse], error) {
	params := BuildParams(f, s.clock(), defaultPerPage)

	raw, err := s.api.Request(ctx, "/admin/transactions", upstream.RequestOptions{Query: params})
	if err != nil {
		return helper.Page[dto.TransactionResponse]{}, err
	}

	page, _ := strconv.Atoi(params["page"])
	per, _ := strconv.Atoi(params["limit"])
	env := helper.AdaptListEnvelope(raw, helper.Paging{Page: page, PerPage: per})
	return helper.MapPage(env, AdaptTransaction), nil
}

// Recap mengambil angka agregat; scope (mis. year) diteruskan ke upstream.
func (s *TransactionService) Recap(ctx context.Context, scope map[string]string) (dto.RecapSummary, error) {
	raw, err := s.api.Request(ctx, "/admin/transactions/recap", upstream.RequestOptions{Query: scope})
	if err != nil {
		return dto.RecapSummary{}, err
	}
	return BuildRecap(raw, s.clock()), nil
}

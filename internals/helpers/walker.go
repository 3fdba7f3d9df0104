// file: internals/helpers/walker.go
package helper

import (
	"context"
	"fmt"

	"tutorku_backend/internals/upstream"
)

// WalkAll menarik seluruh halaman sebuah list endpoint secara berurutan dan
// menggabungkan item-itemnya. Halaman N+1 baru diminta setelah response
// halaman N diterima: total_pages dibaca ulang dari response TERAKHIR, karena
// jumlah halaman bisa mengecil saat data berubah di tengah walk. Error fetch
// menggugurkan seluruh walk; tidak ada semantik sukses-parsial.
//
// maxPages adalah pagar keras terhadap upstream yang melaporkan total_pages
// liar; melewatinya dianggap kegagalan transport (ErrPageCapExceeded).
func WalkAll[T any](ctx context.Context, maxPages int, fetch func(ctx context.Context, page int) (Page[T], error)) ([]T, error) {
	if maxPages <= 0 {
		maxPages = 1000
	}

	var items []T
	totalPages := 1
	for page := 1; page <= totalPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if page > maxPages {
			return nil, fmt.Errorf("%w (max %d)", upstream.ErrPageCapExceeded, maxPages)
		}

		res, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		items = append(items, res.Items...)
		totalPages = res.TotalPages
	}
	return items, nil
}

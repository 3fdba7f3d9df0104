// file: internals/upstream/seq.go
package upstream

import (
	"context"
	"sync/atomic"
)

// Seq memberi token urut monoton untuk request layar yang sama. Hanya
// response dengan token terakhir yang boleh dipakai; response basi dibuang
// diam-diam, bukan dijadikan error.
type Seq struct {
	n atomic.Uint64
}

// Next menerbitkan token baru dan sekaligus membatalkan (secara kooperatif)
// semua token sebelumnya.
func (s *Seq) Next() uint64 {
	return s.n.Add(1)
}

// Latest melaporkan apakah tok masih token terakhir yang diterbitkan.
func (s *Seq) Latest(tok uint64) bool {
	return s.n.Load() == tok
}

type requestIDKey struct{}

// WithRequestID menyimpan request id untuk diteruskan ke backend marketplace.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

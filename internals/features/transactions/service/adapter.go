// file: internals/features/transactions/service/adapter.go
package service

import (
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"

	helper "tutorku_backend/internals/helpers"

	"tutorku_backend/internals/features/transactions/dto"
)

// PlaceholderName dipakai saat tidak ada satu pun kandidat nama yang terisi.
const PlaceholderName = "-"

// Bentuk mentah transaksi dari upstream. Satu field logis bisa datang lewat
// beberapa jalur nested sekaligus (masa migrasi backend), semuanya opsional.
type rawTransaction struct {
	ID            helper.FlexString `json:"id"`
	TransactionID helper.FlexString `json:"transaction_id"`

	Amount      helper.FlexFloat `json:"amount"`
	Nominal     helper.FlexFloat `json:"nominal"`
	TotalAmount helper.FlexFloat `json:"total_amount"`

	OccurredAt helper.FlexString `json:"occurred_at"`
	CreatedAt  helper.FlexString `json:"created_at"`
	Tanggal    helper.FlexString `json:"tanggal"`

	Status           helper.FlexString `json:"status"`
	StatusPembayaran helper.FlexString `json:"status_pembayaran"`

	Category helper.FlexString `json:"category"`
	Kategori helper.FlexString `json:"kategori"`

	Student *rawName          `json:"student"`
	Murid   *rawName          `json:"murid"`
	Name    helper.FlexString `json:"name"`

	Product     *rawName          `json:"product"`
	Paket       *rawName          `json:"paket"`
	ProductName helper.FlexString `json:"product_name"`

	Promo     *rawPromo         `json:"promo"`
	PromoCode helper.FlexString `json:"promo_code"`
}

type rawName struct {
	Name helper.FlexString `json:"name"`
	Nama helper.FlexString `json:"nama"`
}

func (r *rawName) value() string {
	if r == nil {
		return ""
	}
	return firstNonEmpty(r.Name.Value, r.Nama.Value)
}

type rawPromo struct {
	Name helper.FlexString `json:"name"`
	Code helper.FlexString `json:"code"`
	Kode helper.FlexString `json:"kode"`
}

// AdaptTransaction menormalkan satu record mentah. Precedence per atribut
// stabil dan tidak boleh diubah — backend bisa mengirim beberapa bentuk
// sekaligus dan layar mengandalkan urutan ini:
//
//	id:       id → transaction_id
//	amount:   amount → nominal → total_amount → 0
//	date:     occurred_at → created_at → tanggal
//	status:   status → status_pembayaran
//	category: category → kategori (dinormalkan ke chip)
//	student:  student.name → murid.nama → name → "-"
//	product:  product.name → paket.nama → product_name → "-"
//	promo:    promo.name → promo.code → promo.kode → promo_code → (absen)
func AdaptTransaction(raw json.RawMessage) dto.TransactionResponse {
	var r rawTransaction
	_ = sonic.Unmarshal(raw, &r) // field rusak sudah didegradasi oleh tipe Flex

	status := firstNonEmpty(r.Status.Value, r.StatusPembayaran.Value)

	out := dto.TransactionResponse{
		TransactionID:          firstNonEmpty(r.ID.Value, r.TransactionID.Value),
		TransactionAmount:      firstFloat(r.Amount, r.Nominal, r.TotalAmount),
		TransactionDate:        firstNonEmpty(r.OccurredAt.Value, r.CreatedAt.Value, r.Tanggal.Value),
		TransactionStatus:      status,
		TransactionStatusLabel: ToStatusLabel(status),
		TransactionCategory:    ToCategoryChip(firstNonEmpty(r.Category.Value, r.Kategori.Value)),
		StudentName:            firstNonEmpty(r.Student.value(), r.Murid.value(), r.Name.Value, PlaceholderName),
		ProductName:            firstNonEmpty(r.Product.value(), r.Paket.value(), r.ProductName.Value, PlaceholderName),
	}

	promo := ""
	if r.Promo != nil {
		promo = firstNonEmpty(r.Promo.Name.Value, r.Promo.Code.Value, r.Promo.Kode.Value)
	}
	promo = firstNonEmpty(promo, r.PromoCode.Value)
	if promo != "" {
		out.PromoName = &promo
	}
	return out
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

func firstFloat(candidates ...helper.FlexFloat) float64 {
	for _, c := range candidates {
		if c.Value != nil {
			return *c.Value
		}
	}
	return 0
}

package constants

// ==========================
// ✅ Status transaksi (kode mentah dari backend marketplace)
// ==========================
const (
	StatusPending    = "pending"
	StatusLunas      = "lunas"
	StatusGagal      = "gagal"
	StatusKadaluarsa = "kadaluarsa"
)

// Label status untuk dashboard admin.
const (
	LabelPending  = "Pending"
	LabelSuccess  = "Success"
	LabelFailed   = "Failed"
	LabelExpired  = "Expired"
	LabelCanceled = "Canceled" // tidak punya kode mentah, lihat vocabulary
	LabelUnknown  = "Unknown"  // fallback kode yang belum dikenal
)

// ==========================
// ✅ Kategori transaksi
// ==========================
const (
	CategoryCourse = "COURSE"
	CategoryModule = "MODULE"

	// kode mentah di backend marketplace
	CategoryRawCourse = "kelas"
	CategoryRawModule = "modul"
)

// FilterAll: nilai chip/label yang berarti "tanpa filter".
const FilterAll = "ALL"

// Rentang tanggal cepat di layar daftar transaksi.
const (
	RangeLast30 = "30D"
	RangeLast90 = "90D"
)

// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

/* ===============================
   Page[T] — satu halaman hasil dari backend marketplace
=================================*/

// Page adalah bentuk kanonis satu halaman list, apapun bentuk envelope
// mentahnya. TotalPages dipercaya kalau backend mengirimnya; kalau tidak,
// disintesis ceil(Total/PerPage).
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewPage membangun Page dengan TotalPages sintesis.
func NewPage[T any](items []T, total, page, perPage int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = 1
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: ceilPages(total, perPage),
	}
}

func ceilPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// MapPage mengganti item halaman tanpa mengubah meta.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

/* ===============================
   Pagination meta untuk response JSON
=================================*/

type Pagination struct {
	Page           int   `json:"page"`
	PerPage        int   `json:"per_page"`
	Total          int   `json:"total"`
	TotalPages     int   `json:"total_pages"`
	HasNext        bool  `json:"has_next"`
	HasPrev        bool  `json:"has_prev"`
	Count          int   `json:"count"` // jumlah item di halaman ini
	PerPageOptions []int `json:"per_page_options,omitempty"`
}

var defaultPerPageOptions = []int{10, 20, 30, 50, 100}

func BuildPaginationFromPage(total, page, perPage int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	totalPages := ceilPages(total, perPage)
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:           page,
		PerPage:        perPage,
		Total:          total,
		TotalPages:     totalPages,
		HasNext:        page < totalPages,
		HasPrev:        page > 1,
		PerPageOptions: append([]int(nil), defaultPerPageOptions...),
	}
}

// PaginationOf membangun meta langsung dari sebuah Page.
func PaginationOf[T any](p Page[T]) Pagination {
	meta := BuildPaginationFromPage(p.Total, p.Page, p.PerPage)
	if p.TotalPages > 0 {
		meta.TotalPages = p.TotalPages
		meta.HasNext = p.Page < p.TotalPages
	}
	meta.Count = len(p.Items)
	return meta
}

/* ===============================
   Paging resolver (query → page/perPage)
=================================*/

type Paging struct {
	Page    int
	PerPage int
}

// ResolvePaging membaca ?page= & ?per_page= (atau alias ?limit=) dan normalisasi.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{Page: page, PerPage: perPage}
}

package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationOf(t *testing.T) {
	t.Run("total_pages dari backend menang atas sintesis", func(t *testing.T) {
		p := Page[int]{Items: []int{1, 2}, Total: 95, Page: 2, PerPage: 10, TotalPages: 7}
		meta := PaginationOf(p)
		assert.Equal(t, 7, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
		assert.Equal(t, 2, meta.Count)
	})

	t.Run("tanpa total_pages: ceil(total/per_page)", func(t *testing.T) {
		meta := PaginationOf(NewPage([]int{1}, 21, 1, 10))
		assert.Equal(t, 3, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("halaman kosong tetap total_pages minimal 1", func(t *testing.T) {
		meta := PaginationOf(Page[int]{Page: 1, PerPage: 10})
		assert.Equal(t, 1, meta.TotalPages)
		assert.Zero(t, meta.Count)
	})
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		name string
		url  string
		want Paging
	}{
		{"default", "/x", Paging{Page: 1, PerPage: 10}},
		{"per_page eksplisit", "/x?page=3&per_page=25", Paging{Page: 3, PerPage: 25}},
		{"alias limit", "/x?limit=50", Paging{Page: 1, PerPage: 50}},
		{"per_page menang atas limit", "/x?per_page=20&limit=50", Paging{Page: 1, PerPage: 20}},
		{"nilai liar dipagari", "/x?page=-2&per_page=9999", Paging{Page: 1, PerPage: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

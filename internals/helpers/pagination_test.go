package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	return got
}

func TestParseFiber(t *testing.T) {
	tests := []struct {
		name  string
		query string
		opt   Options
		want  Params
	}{
		{"default", "", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"halaman & limit", "page=3&limit=10&sort_by=name&order=ASC", DefaultOpts, Params{Page: 3, PerPage: 10, SortBy: "name", SortOrder: "asc"}},
		{"page negatif", "page=-4", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"dibatasi max", "per_page=1000", DefaultOpts, Params{Page: 1, PerPage: 200, SortBy: "created_at", SortOrder: "desc"}},
		{"all untuk admin", "page=5&per_page=all", AdminOpts, Params{Page: 1, PerPage: 5000, SortBy: "created_at", SortOrder: "desc", All: true}},
		{"all tidak diizinkan", "per_page=all", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"order aneh", "order=sideways", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQuery(t, tt.query, tt.opt))
		})
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"name": "student_full_name", "created_at": "student_created_at"}

	got, err := Params{SortBy: "name", SortOrder: "asc"}.OrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_full_name ASC", got)

	// kolom di luar whitelist jatuh ke default
	got, err = Params{SortBy: "password; drop table", SortOrder: "desc"}.OrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_created_at DESC", got)

	_, err = Params{}.OrderClause(allowed, "missing")
	assert.Error(t, err)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(51, Params{Page: 2, PerPage: 25}, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, Params{Page: 1, PerPage: 25}, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

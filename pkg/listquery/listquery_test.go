package listquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSpec = Spec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":         "id",
		"name":       "name",
		"created_at": "created_at",
	},
	SearchColumns: []string{"name", "city"},
}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams(url.Values{})

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Empty(t, p.Sort)
	assert.Empty(t, p.Keyword)
}

func TestParseParams_InvalidNumbersFallBack(t *testing.T) {
	query := url.Values{}
	query.Set("page", "abc")
	query.Set("per_page", "xyz")

	p := ParseParams(query)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestLimit_Clamping(t *testing.T) {
	assert.Equal(t, DefaultPerPage, Params{PerPage: 0}.Limit())
	assert.Equal(t, DefaultPerPage, Params{PerPage: -5}.Limit())
	assert.Equal(t, 25, Params{PerPage: 25}.Limit())
	assert.Equal(t, MaxPerPage, Params{PerPage: 500}.Limit())
}

func TestOffset_ZeroIndexed(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 0, PerPage: 10}.Offset())
	assert.Equal(t, 20, Params{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 0, Params{Page: -3, PerPage: 10}.Offset())
}

func TestBuild_NoKeyword(t *testing.T) {
	q := testSpec.Build(Params{Page: 1, PerPage: 10, Sort: "name", Order: "desc"}, 1)

	assert.Empty(t, q.Where)
	assert.Empty(t, q.WhereArgs)
	assert.Equal(t, " ORDER BY name DESC LIMIT $1 OFFSET $2", q.Tail)
	assert.Equal(t, []any{10, 10}, q.TailArgs)
}

func TestBuild_Keyword(t *testing.T) {
	q := testSpec.Build(Params{PerPage: 10, Keyword: "jakarta"}, 1)

	assert.Equal(t, " AND (name ILIKE '%' || $1 || '%' OR city ILIKE '%' || $1 || '%')", q.Where)
	assert.Equal(t, []any{"jakarta"}, q.WhereArgs)
	assert.Equal(t, " ORDER BY id ASC LIMIT $2 OFFSET $3", q.Tail)
}

func TestBuild_KeywordWhitespaceIgnored(t *testing.T) {
	q := testSpec.Build(Params{PerPage: 10, Keyword: "   "}, 1)

	assert.Empty(t, q.Where)
	assert.Equal(t, " ORDER BY id ASC LIMIT $1 OFFSET $2", q.Tail)
}

func TestBuild_UnknownSortFallsBack(t *testing.T) {
	// A hostile sort key must never reach the SQL text.
	q := testSpec.Build(Params{PerPage: 10, Sort: "name; DROP TABLE users"}, 1)

	assert.Equal(t, " ORDER BY id ASC LIMIT $1 OFFSET $2", q.Tail)
}

func TestBuild_UnknownOrderFallsBack(t *testing.T) {
	q := testSpec.Build(Params{PerPage: 10, Sort: "name", Order: "sideways"}, 1)

	assert.Equal(t, " ORDER BY name ASC LIMIT $1 OFFSET $2", q.Tail)
}

func TestBuild_StartArgShiftsPlaceholders(t *testing.T) {
	// Callers with a base filter (e.g. category_id = $1) start at $2.
	q := testSpec.Build(Params{PerPage: 10, Keyword: "box"}, 2)

	assert.Equal(t, " AND (name ILIKE '%' || $2 || '%' OR city ILIKE '%' || $2 || '%')", q.Where)
	assert.Equal(t, " ORDER BY id ASC LIMIT $3 OFFSET $4", q.Tail)
}

func TestArgs_Composition(t *testing.T) {
	q := testSpec.Build(Params{Page: 1, PerPage: 5, Keyword: "box"}, 2)

	assert.Equal(t, []any{"base", "box", 5, 5}, q.Args("base"))
	assert.Equal(t, []any{"base", "box"}, q.CountArgs("base"))
}

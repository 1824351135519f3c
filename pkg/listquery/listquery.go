// Package listquery turns the list-endpoint query string (page, sort, order,
// keyword) into bounded, injection-safe SQL fragments. Every resource list in
// the API goes through it: sort keys are resolved against a per-entity
// allow-list, the keyword becomes a parameterised ILIKE across the entity's
// searchable columns, and pagination is clamped offset/limit.
package listquery

import (
	"fmt"
	"net/url"
	"strings"

	"warehouse-api/pkg/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params is the caller-supplied list request. Page is zero-indexed.
type Params struct {
	Page    int
	PerPage int
	Sort    string
	Order   string
	Keyword string
}

// ParseParams reads list parameters from a request query string.
func ParseParams(query url.Values) Params {
	return Params{
		Page:    utils.ParseInt(query.Get("page"), 0),
		PerPage: utils.ParseInt(query.Get("per_page"), DefaultPerPage),
		Sort:    query.Get("sort"),
		Order:   query.Get("order"),
		Keyword: query.Get("keyword"),
	}
}

// Limit returns the clamped page size.
func (p Params) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}

// Offset returns page*limit, with negative pages clamped to the first page.
func (p Params) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

// Spec describes how one entity may be listed.
type Spec struct {
	// DefaultSort is the column used when the requested sort key is unknown.
	DefaultSort string
	// SortColumns maps request sort keys to real column names. Only values
	// from this map are ever interpolated into SQL.
	SortColumns map[string]string
	// SearchColumns are the columns matched by the keyword filter.
	SearchColumns []string
}

// Query holds the SQL fragments produced from a Spec and Params pair.
// Where (plus WhereArgs) is appended to both the page query and the count
// query; Tail (plus TailArgs) only to the page query.
type Query struct {
	Where     string
	Tail      string
	WhereArgs []any
	TailArgs  []any
}

// Build resolves params against the Spec. startArg is the first free
// placeholder number ($1-based) in the caller's base query.
func (s Spec) Build(p Params, startArg int) Query {
	var q Query
	arg := startArg

	if keyword := strings.TrimSpace(p.Keyword); keyword != "" && len(s.SearchColumns) > 0 {
		matches := make([]string, len(s.SearchColumns))
		for i, col := range s.SearchColumns {
			matches[i] = fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, arg)
		}
		q.Where = " AND (" + strings.Join(matches, " OR ") + ")"
		q.WhereArgs = append(q.WhereArgs, keyword)
		arg++
	}

	q.Tail = fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d",
		s.sortColumn(p.Sort), sortOrder(p.Order), arg, arg+1)
	q.TailArgs = append(q.TailArgs, p.Limit(), p.Offset())

	return q
}

// Args returns the full argument list for the page query.
func (q Query) Args(base ...any) []any {
	args := append([]any{}, base...)
	args = append(args, q.WhereArgs...)
	return append(args, q.TailArgs...)
}

// CountArgs returns the argument list for the count query.
func (q Query) CountArgs(base ...any) []any {
	args := append([]any{}, base...)
	return append(args, q.WhereArgs...)
}

// sortColumn resolves the requested sort key against the allow-list.
// Unknown keys fall back to the default column, never to the raw input.
func (s Spec) sortColumn(key string) string {
	if col, ok := s.SortColumns[key]; ok {
		return col
	}
	return s.DefaultSort
}

func sortOrder(order string) string {
	if strings.EqualFold(order, "DESC") {
		return "DESC"
	}
	return "ASC"
}

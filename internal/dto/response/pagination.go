package response

import (
	"warehouse-api/pkg/utils"
)

// ListResponse is the paginated payload every list endpoint returns. Rows is
// never nil so the client always receives a JSON array, and TotalPages is
// always present so the pager renders without a second round trip.
type ListResponse[T any] struct {
	Rows       []T   `json:"rows"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewListResponse[T any](rows []T, page, perPage int, total int64) *ListResponse[T] {
	if rows == nil {
		rows = []T{}
	}
	if page < 0 {
		page = 0
	}

	return &ListResponse[T]{
		Rows:       rows,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}
}

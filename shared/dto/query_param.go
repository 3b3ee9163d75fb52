package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the ordering applied to list queries.
// Pagination is intentionally absent: every list endpoint returns the full result set.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

package types

// Pagination is the shared list-response metadata. Total is an exact count
// over the same predicate as the data page.
type Pagination struct {
  Page       int   `json:"page"`
  Limit      int   `json:"limit"`
  Total      int64 `json:"total"`
  TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
  totalPages := int((total + int64(limit) - 1) / int64(limit))
  return Pagination{
    Page:       page,
    Limit:      limit,
    Total:      total,
    TotalPages: totalPages,
  }
}

// PageParams is the validated page/limit pair handed down to repos.
type PageParams struct {
  Page  int
  Limit int
}

func (p PageParams) Offset() int {
  return (p.Page - 1) * p.Limit
}

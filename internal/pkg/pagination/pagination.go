package pagination

import (
	"strconv"

	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Query holds parsed pagination parameters. Page and Limit are 1-indexed
// and always >= 1; client-supplied garbage falls back to the defaults.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and clamps pagination params from the request.
func FromContext(c *gin.Context) Query {
	return Parse(c.Query("page"), c.Query("limit"))
}

// Parse builds a clamped Query from raw string parameters.
func Parse(pageStr, limitStr string) Query {
	page := parseIntOr(pageStr, DefaultPage)
	limit := parseIntOr(limitStr, DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{Page: page, Limit: limit}
}

// Offset returns the row offset for the page.
func (q Query) Offset() int { return (q.Page - 1) * q.Limit }

// Meta computes pagination metadata for a total row count.
func (q Query) Meta(total int64) response.Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
		HasMore:    int64(q.Offset()+q.Limit) < total,
	}
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata. The caller's ordering is preserved.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.Offset()).Limit(q.Limit).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}
	return q.Meta(total), nil
}

func parseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

package persistence

import (
	"strings"

	"github.com/rentals/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// paginate applies offset and limit when the filter asks for a page
func paginate(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// searchPattern returns a lowercase LIKE pattern, or "" for an empty search.
// LOWER(col) LIKE works on both PostgreSQL and SQLite where ILIKE does not.
func searchPattern(search string) string {
	s := strings.ToLower(strings.TrimSpace(search))
	if s == "" {
		return ""
	}
	return "%" + s + "%"
}

package service

import (
	"fmt"
	"math"
	"strings"

	"blogapp/internal/models"
)

// Listing defaults applied by the request layer when a query parameter is absent.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
	DefaultSortBy     = "postId"
	DefaultSortDir    = "asc"
)

// MaxPageOffset bounds pageNumber*pageSize so the row offset stays valid for every store.
const MaxPageOffset = math.MaxInt32

// PageQuery is a requested page of a sorted listing.
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDir    string
}

// Ascending reports whether SortDir asks for ascending order. Anything other
// than "asc" sorts descending.
func (q PageQuery) Ascending() bool {
	return strings.EqualFold(strings.TrimSpace(q.SortDir), "asc")
}

func validatePage(pageNumber, pageSize int) error {
	var fields []models.FieldError
	if pageNumber < 0 {
		fields = append(fields, models.FieldError{Field: "pageNumber", Message: "must be greater than or equal to 0"})
	}
	if pageSize <= 0 {
		fields = append(fields, models.FieldError{Field: "pageSize", Message: "must be greater than 0"})
	} else if pageSize > MaxPageOffset {
		fields = append(fields, models.FieldError{Field: "pageSize", Message: fmt.Sprintf("must be at most %d", MaxPageOffset)})
	} else if pageNumber > MaxPageOffset/pageSize {
		fields = append(fields, models.FieldError{Field: "pageNumber", Message: "is too large for the page size"})
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields...)
	}
	return nil
}

// pageMeta derives totalPages and lastPage from the store count.
func pageMeta(total int64, pageNumber, pageSize int) (totalPages int, lastPage bool) {
	totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	return totalPages, pageNumber+1 >= totalPages
}

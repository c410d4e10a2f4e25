package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page    int
	PerPage int
	Offset  int
	Total   int64
	Pages   int
}

// NewPagination creates a Pagination instance from query parameters,
// clamping out-of-range values to sane defaults.
func NewPagination(c *gin.Context, defaultPerPage, maxPerPage int) *Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	return &Pagination{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}

// SetTotal sets the total item count and derives the page count
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.Pages = TotalPages(total, p.PerPage)
}

// TotalPages computes ceil(total / perPage)
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// ToResponse returns the pagination block used in list responses
func (p *Pagination) ToResponse() gin.H {
	return gin.H{
		"page":     p.Page,
		"per_page": p.PerPage,
		"total":    p.Total,
		"pages":    p.Pages,
	}
}

package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 500, TotalPages(10000, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestNewPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/vouchers?"+query, nil)
		return c
	}

	t.Run("defaults", func(t *testing.T) {
		p := NewPagination(newContext(""), 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		p := NewPagination(newContext("page=3&per_page=50"), 20, 100)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 50, p.PerPage)
		assert.Equal(t, 100, p.Offset)
	})

	t.Run("out of range values are clamped", func(t *testing.T) {
		p := NewPagination(newContext("page=0&per_page=1000"), 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})

	t.Run("set total derives pages", func(t *testing.T) {
		p := NewPagination(newContext("per_page=10"), 20, 100)
		p.SetTotal(25)
		assert.Equal(t, int64(25), p.Total)
		assert.Equal(t, 3, p.Pages)
	})
}

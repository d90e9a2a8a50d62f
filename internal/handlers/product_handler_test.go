package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func filterContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestListFilterReadsCatalogQueryParams(t *testing.T) {
	c := filterContext(t, "/api/products?category=Tops&search=tee&minPrice=100&maxPrice=200&sortBy=price-low")

	filter := listFilter(c)

	assert.Equal(t, "Tops", filter.Category)
	assert.Equal(t, "tee", filter.Search)
	assert.Equal(t, "price-low", filter.SortBy)
	if assert.NotNil(t, filter.MinPrice) {
		assert.Equal(t, 100.0, *filter.MinPrice)
	}
	if assert.NotNil(t, filter.MaxPrice) {
		assert.Equal(t, 200.0, *filter.MaxPrice)
	}
}

func TestListFilterNormalizesGender(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"men", "Men"},
		{"WOMEN", "Women"},
		{"Unisex", "Unisex"},
		{"all", "all"},
		{"ALL", "all"},
		{"", ""},
	}

	for _, tt := range tests {
		c := filterContext(t, "/api/products?gender="+tt.query)
		assert.Equal(t, tt.want, listFilter(c).Gender, "gender=%q", tt.query)
	}
}

func TestListFilterIgnoresUnparseablePrices(t *testing.T) {
	c := filterContext(t, "/api/products?minPrice=cheap&maxPrice=")

	filter := listFilter(c)

	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

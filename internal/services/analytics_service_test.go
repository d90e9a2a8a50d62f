package services

import (
	"storefront/internal/mocks"
	"storefront/internal/models"
	"storefront/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalesReportAggregates(t *testing.T) {
	salesRepo := new(mocks.MockSalesRepository)

	salesRepo.On("GetAll").Return([]models.SalesRecord{
		{ID: 1, ProductID: 1, ProductName: "Shirt", Quantity: 2, Price: 20, LineTotal: 40, OrderID: 42},
		{ID: 2, ProductID: 2, ProductName: "Hat", Quantity: 1, Price: 15, LineTotal: 15, OrderID: 43},
	}, nil)
	salesRepo.On("SummarizeByProduct").Return([]repository.ProductSales{
		{ProductID: 1, ProductName: "Shirt", UnitsSold: 2, Revenue: 40},
		{ProductID: 2, ProductName: "Hat", UnitsSold: 1, Revenue: 15},
	}, nil)
	salesRepo.On("TotalRevenue").Return(55.0, nil)

	svc := NewAnalyticsService(salesRepo)
	report, err := svc.SalesReport()

	assert.NoError(t, err)
	assert.Equal(t, 55.0, report.TotalRevenue)
	assert.Equal(t, int64(3), report.TotalUnits)
	assert.Len(t, report.Products, 2)
	// Records keep the id of orders that may no longer exist
	assert.Equal(t, uint(42), report.Records[0].OrderID)
}

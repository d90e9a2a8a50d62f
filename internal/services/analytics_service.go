package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
)

// SalesReport aggregates the retained sales records. Records outlive their
// orders, so the report covers purged and manually deleted orders too.
type SalesReport struct {
	TotalRevenue float64                   `json:"total_revenue"`
	TotalUnits   int64                     `json:"total_units"`
	Products     []repository.ProductSales `json:"products"`
	Records      []models.SalesRecord      `json:"records"`
}

type AnalyticsService interface {
	SalesReport() (*SalesReport, error)
	ProductSummary() ([]repository.ProductSales, error)
}

type analyticsService struct {
	salesRepo repository.SalesRepository
}

func NewAnalyticsService(salesRepo repository.SalesRepository) AnalyticsService {
	return &analyticsService{salesRepo: salesRepo}
}

func (s *analyticsService) SalesReport() (*SalesReport, error) {
	records, err := s.salesRepo.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.salesRepo.SummarizeByProduct()
	if err != nil {
		return nil, err
	}
	total, err := s.salesRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	var units int64
	for _, p := range products {
		units += p.UnitsSold
	}

	return &SalesReport{
		TotalRevenue: total,
		TotalUnits:   units,
		Products:     products,
		Records:      records,
	}, nil
}

func (s *analyticsService) ProductSummary() ([]repository.ProductSales, error) {
	return s.salesRepo.SummarizeByProduct()
}

package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

// ProductSales is a per-product aggregation over sales records.
type ProductSales struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int64   `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

type SalesRepository interface {
	GetAll() ([]models.SalesRecord, error)
	SummarizeByProduct() ([]ProductSales, error)
	TotalRevenue() (float64, error)
}

type salesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) GetAll() ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *salesRepository) SummarizeByProduct() ([]ProductSales, error) {
	var rows []ProductSales
	err := r.db.Model(&models.SalesRecord{}).
		Select("product_id, product_name, SUM(quantity) AS units_sold, SUM(line_total) AS revenue").
		Group("product_id, product_name").
		Order("revenue DESC").
		Find(&rows).Error
	return rows, err
}

func (r *salesRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(line_total), 0)").
		Scan(&total).Error
	return total, err
}

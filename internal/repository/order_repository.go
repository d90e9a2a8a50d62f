package repository

import (
	"errors"
	"storefront/internal/models"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithItems persists the order header, its line items and the
	// matching sales records in one transaction.
	CreateWithItems(order *models.Order, items []models.OrderItem, records []models.SalesRecord) error
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	// MarkDelivered sets the status and stamps the purge due time in one
	// write, so a delivered order can never exist without its schedule.
	MarkDelivered(id uint, due time.Time) error
	FindDueForPurge(now time.Time) ([]models.Order, error)
	// PurgeDelivered deletes the order only if it is still Delivered.
	// Returns true when a row was actually deleted.
	PurgeDelivered(id uint) (bool, error)
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(order *models.Order, items []models.OrderItem, records []models.SalesRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		for i := range records {
			records[i].OrderID = order.ID
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) MarkDelivered(id uint, due time.Time) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       models.StatusDelivered,
		"purge_due_at": due,
	}).Error
}

func (r *orderRepository) FindDueForPurge(now time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ? AND purge_due_at IS NOT NULL AND purge_due_at <= ?", models.StatusDelivered, now).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) PurgeDelivered(id uint) (bool, error) {
	// Status is re-checked in the delete predicate; a sweep entry races with
	// manual deletes and status updates, and must not remove an order that
	// has moved away from Delivered in the meantime.
	result := r.db.Where("id = ? AND status = ?", id, models.StatusDelivered).Delete(&models.Order{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *orderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Order{}, id).Error
}

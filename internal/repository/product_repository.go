package repository

import (
	"errors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// ProductFilter mirrors the catalog query parameters. Zero values mean "no
// filter"; SortBy falls back to newest-first.
type ProductFilter struct {
	Category string
	Gender   string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// ProductRow is a flat listing row with the category name joined in.
type ProductRow struct {
	models.Product
	CategoryName string `json:"category_name"`
}

type ProductRepository interface {
	List(filter ProductFilter) ([]ProductRow, error)
	ListPage(filter ProductFilter, page, limit int) ([]ProductRow, int64, error)
	GetByID(id uint) (*ProductRow, error)
	ColorsFor(productID uint) ([]models.Color, error)
	ImagesFor(productID uint) ([]models.ColorImage, error)
	ImageByID(productID, imageID uint) (*models.ColorImage, error)
	DeleteImage(imageID uint) error
	CreateFull(product *models.Product, sizes []models.ProductSize, colorIDs []uint, images []models.ColorImage) error
	UpdateFull(product *models.Product, sizes []models.ProductSize, colorIDs []uint, images []models.ColorImage) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) baseQuery(filter ProductFilter) *gorm.DB {
	q := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")

	if filter.Category != "" {
		q = q.Where("categories.name = ?", filter.Category)
	}
	if filter.Gender != "" && filter.Gender != "all" {
		q = q.Where("products.gender = ?", filter.Gender)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		q = q.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("products.price <= ?", *filter.MaxPrice)
	}

	switch filter.SortBy {
	case "price-low":
		q = q.Order("products.price ASC")
	case "price-high":
		q = q.Order("products.price DESC")
	case "name":
		q = q.Order("products.name ASC")
	default:
		q = q.Order("products.created_at DESC")
	}
	return q
}

func (r *productRepository) List(filter ProductFilter) ([]ProductRow, error) {
	var rows []ProductRow
	err := r.baseQuery(filter).Find(&rows).Error
	return rows, err
}

func (r *productRepository) ListPage(filter ProductFilter, page, limit int) ([]ProductRow, int64, error) {
	var total int64
	countQuery := r.db.Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
	if filter.Category != "" {
		countQuery = countQuery.Where("categories.name = ?", filter.Category)
	}
	if filter.Gender != "" && filter.Gender != "all" {
		countQuery = countQuery.Where("products.gender = ?", filter.Gender)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		countQuery = countQuery.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		countQuery = countQuery.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		countQuery = countQuery.Where("products.price <= ?", *filter.MaxPrice)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ProductRow
	offset := (page - 1) * limit
	err := r.baseQuery(filter).Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *productRepository) GetByID(id uint) (*ProductRow, error) {
	var row ProductRow
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.Where("product_id = ?", id).Find(&row.Sizes).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *productRepository) ColorsFor(productID uint) ([]models.Color, error) {
	var colors []models.Color
	err := r.db.Model(&models.Color{}).
		Joins("JOIN product_colors ON product_colors.color_id = colors.id").
		Where("product_colors.product_id = ?", productID).
		Find(&colors).Error
	return colors, err
}

func (r *productRepository) ImagesFor(productID uint) ([]models.ColorImage, error) {
	var images []models.ColorImage
	err := r.db.Where("product_id = ?", productID).Order("image_order ASC").Find(&images).Error
	return images, err
}

func (r *productRepository) ImageByID(productID, imageID uint) (*models.ColorImage, error) {
	var image models.ColorImage
	err := r.db.Where("id = ? AND product_id = ?", imageID, productID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) DeleteImage(imageID uint) error {
	return r.db.Delete(&models.ColorImage{}, imageID).Error
}

// CreateFull writes the product and all of its associations in a single
// transaction. Rolls back entirely on any failure.
func (r *productRepository) CreateFull(product *models.Product, sizes []models.ProductSize, colorIDs []uint, images []models.ColorImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		for i := range sizes {
			sizes[i].ProductID = product.ID
		}
		if len(sizes) > 0 {
			if err := tx.Create(&sizes).Error; err != nil {
				return err
			}
		}
		for _, colorID := range colorIDs {
			link := models.ProductColor{ProductID: product.ID, ColorID: colorID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		for i := range images {
			images[i].ProductID = product.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateFull replaces sizes and color links wholesale. Images are replaced
// only for colors that appear in the new image set; other colors keep their
// existing images.
func (r *productRepository) UpdateFull(product *models.Product, sizes []models.ProductSize, colorIDs []uint, images []models.ColorImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}

		if sizes != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error; err != nil {
				return err
			}
			for i := range sizes {
				sizes[i].ProductID = product.ID
			}
			if len(sizes) > 0 {
				if err := tx.Create(&sizes).Error; err != nil {
					return err
				}
			}
		}

		if colorIDs != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductColor{}).Error; err != nil {
				return err
			}
			for _, colorID := range colorIDs {
				link := models.ProductColor{ProductID: product.ID, ColorID: colorID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		if len(images) > 0 {
			replaced := make(map[uint]bool)
			for _, img := range images {
				replaced[img.ColorID] = true
			}
			for colorID := range replaced {
				if err := tx.Where("product_id = ? AND color_id = ?", product.ID, colorID).Delete(&models.ColorImage{}).Error; err != nil {
					return err
				}
			}
			for i := range images {
				images[i].ProductID = product.ID
			}
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

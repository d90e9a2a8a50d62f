package services

import (
	"context"
	"fmt"
	"log"
	"storefront/internal/models"
	"storefront/internal/repository"
	"time"
)

// CatalogCache is the read cache in front of catalog queries. Implemented by
// the redis client; a nil cache disables caching entirely.
type CatalogCache interface {
	GetCatalog(ctx context.Context, key string, dest interface{}) error
	SetCatalog(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error
}

type ProductListItem struct {
	repository.ProductRow
	Colors      []string `json:"colors"`
	ColorCount  int      `json:"color_count"`
	TotalImages int      `json:"total_images"`
	FirstImage  string   `json:"first_image,omitempty"`
}

type ColorDetail struct {
	models.Color
	Images []models.ColorImage `json:"images"`
}

type ProductDetail struct {
	repository.ProductRow
	Colors      []ColorDetail `json:"colors"`
	ColorCount  int           `json:"color_count"`
	TotalImages int           `json:"total_images"`
	HasImages   bool          `json:"has_images"`
}

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

type SizeInput struct {
	Value    string `json:"value"`
	Quantity int    `json:"quantity"`
}

type ImageInput struct {
	ColorID uint   `json:"color_id"`
	Path    string `json:"path"`
	Order   int    `json:"order"`
}

type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	Gender        string
	CategoryID    uint
	SizeType      string
	Sizes         []SizeInput
	ColorIDs      []uint
	Images        []ImageInput
}

type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]ProductListItem, error)
	ListPage(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]ProductListItem, *Pagination, error)
	Get(ctx context.Context, id uint) (*ProductDetail, error)
	Create(ctx context.Context, input ProductInput) (uint, error)
	Update(ctx context.Context, id uint, input ProductInput) error
	Delete(ctx context.Context, id uint) error
	DeleteImage(ctx context.Context, productID, imageID uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        CatalogCache
	cacheTTL     time.Duration
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache CatalogCache, cacheTTL time.Duration) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func filterKey(filter repository.ProductFilter) string {
	min, max := "", ""
	if filter.MinPrice != nil {
		min = fmt.Sprintf("%g", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		max = fmt.Sprintf("%g", *filter.MaxPrice)
	}
	return fmt.Sprintf("products:%s:%s:%s:%s:%s:%s", filter.Category, filter.Gender, filter.Search, min, max, filter.SortBy)
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]ProductListItem, error) {
	key := filterKey(filter)
	if s.cache != nil {
		var cached []ProductListItem
		if err := s.cache.GetCatalog(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.enrich(rows)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, key, items, s.cacheTTL); err != nil {
			log.Printf("Failed to cache product listing: %v", err)
		}
	}
	return items, nil
}

func (s *productService) ListPage(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]ProductListItem, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	rows, total, err := s.productRepo.ListPage(filter, page, limit)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.enrich(rows)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := &Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
	return items, pagination, nil
}

func (s *productService) enrich(rows []repository.ProductRow) ([]ProductListItem, error) {
	items := make([]ProductListItem, 0, len(rows))
	for _, row := range rows {
		item := ProductListItem{ProductRow: row, Colors: []string{}}

		colors, err := s.productRepo.ColorsFor(row.ID)
		if err != nil {
			return nil, err
		}
		for _, color := range colors {
			item.Colors = append(item.Colors, color.Name)
		}
		item.ColorCount = len(colors)

		images, err := s.productRepo.ImagesFor(row.ID)
		if err != nil {
			return nil, err
		}
		item.TotalImages = len(images)
		if len(images) > 0 {
			item.FirstImage = images[0].ImagePath
		}

		items = append(items, item)
	}
	return items, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*ProductDetail, error) {
	key := fmt.Sprintf("product:%d", id)
	if s.cache != nil {
		var cached ProductDetail
		if err := s.cache.GetCatalog(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	row, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		// Misses are not cached; a product created under this id must be
		// visible immediately.
		return nil, &NotFoundError{Message: "Product not found"}
	}

	colors, err := s.productRepo.ColorsFor(id)
	if err != nil {
		return nil, err
	}
	images, err := s.productRepo.ImagesFor(id)
	if err != nil {
		return nil, err
	}

	byColor := make(map[uint][]models.ColorImage)
	for _, img := range images {
		byColor[img.ColorID] = append(byColor[img.ColorID], img)
	}

	detail := &ProductDetail{ProductRow: *row, Colors: []ColorDetail{}}
	for _, color := range colors {
		detail.Colors = append(detail.Colors, ColorDetail{Color: color, Images: byColor[color.ID]})
	}
	detail.ColorCount = len(colors)
	detail.TotalImages = len(images)
	detail.HasImages = len(images) > 0

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, key, detail, s.cacheTTL); err != nil {
			log.Printf("Failed to cache product detail: %v", err)
		}
	}
	return detail, nil
}

func (s *productService) Create(ctx context.Context, input ProductInput) (uint, error) {
	if input.Name == "" || input.Price == 0 || input.Gender == "" || input.CategoryID == 0 || input.SizeType == "" {
		return 0, &ValidationError{Message: "Name, price, gender, category, and size type are required"}
	}
	if input.Gender != "Men" && input.Gender != "Women" && input.Gender != "Unisex" {
		return 0, &ValidationError{Message: "Gender must be Men, Women, or Unisex"}
	}
	if input.SizeType != "numeric" && input.SizeType != "string" {
		return 0, &ValidationError{Message: "Size type must be numeric or string"}
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, &ValidationError{Message: "Category not found"}
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Gender:        input.Gender,
		CategoryID:    input.CategoryID,
		SizeType:      input.SizeType,
	}

	if err := s.productRepo.CreateFull(product, buildSizes(input.Sizes), input.ColorIDs, buildImages(input.Images)); err != nil {
		return 0, err
	}

	s.invalidate(ctx)
	return product.ID, nil
}

func (s *productService) Update(ctx context.Context, id uint, input ProductInput) error {
	row, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return &NotFoundError{Message: "Product not found"}
	}

	product := row.Product
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.DiscountPrice = input.DiscountPrice
	product.Gender = input.Gender
	product.CategoryID = input.CategoryID
	product.SizeType = input.SizeType
	product.Sizes = nil
	product.Images = nil

	if err := s.productRepo.UpdateFull(&product, buildSizes(input.Sizes), input.ColorIDs, buildImages(input.Images)); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	row, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return &NotFoundError{Message: "Product not found"}
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *productService) DeleteImage(ctx context.Context, productID, imageID uint) error {
	image, err := s.productRepo.ImageByID(productID, imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return &NotFoundError{Message: "Image not found"}
	}

	if err := s.productRepo.DeleteImage(imageID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *productService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
}

func buildSizes(inputs []SizeInput) []models.ProductSize {
	if inputs == nil {
		return nil
	}
	sizes := make([]models.ProductSize, 0, len(inputs))
	for _, in := range inputs {
		sizes = append(sizes, models.ProductSize{SizeValue: in.Value, StockQuantity: in.Quantity})
	}
	return sizes
}

func buildImages(inputs []ImageInput) []models.ColorImage {
	images := make([]models.ColorImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.ColorImage{ColorID: in.ColorID, ImagePath: in.Path, ImageOrder: in.Order})
	}
	return images
}

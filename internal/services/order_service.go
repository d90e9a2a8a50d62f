package services

import (
	"encoding/json"
	"log"
	"storefront/internal/models"
	"storefront/internal/repository"
	"strconv"
	"time"
)

// looseNumber decodes a JSON number that clients may send either as a number
// or as a decimal string ("20.00"). Anything unparseable counts as zero
// instead of failing the whole order.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = looseNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = looseNumber(f)
			return nil
		}
	}
	*n = 0
	return nil
}

// IntakeItem is one cart line as submitted at checkout.
type IntakeItem struct {
	ProductID   uint        `json:"product_id"`
	ProductName string      `json:"product_name"`
	Size        string      `json:"size"`
	Color       string      `json:"color"`
	Quantity    looseNumber `json:"quantity"`
	Price       looseNumber `json:"price"`
}

type OrderIntake struct {
	UserID        uint
	PaymentMethod string
	Address       string
	Phone         string
	ItemsJSON     string
	ReceiptPath   string
}

// OrderView is an order annotated with customer identity for the admin list.
type OrderView struct {
	models.Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type OrderService interface {
	// Intake validates a submitted cart, computes the total from the current
	// shipping fee, and persists the order, its items and the matching sales
	// records in one transaction. Returns the new order id.
	Intake(intake OrderIntake) (uint, error)
	List() ([]OrderView, error)
	Get(id uint) (*OrderView, error)
	// UpdateStatus persists the new status. Reaching Delivered schedules the
	// deferred purge by stamping a due time on the row; the periodic sweep
	// picks it up later.
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type orderService struct {
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	shipping   ShippingFeeReader
	purgeDelay time.Duration
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, shipping ShippingFeeReader, purgeDelay time.Duration) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		shipping:   shipping,
		purgeDelay: purgeDelay,
	}
}

func (s *orderService) Intake(intake OrderIntake) (uint, error) {
	if intake.PaymentMethod == "" || intake.Address == "" || intake.Phone == "" || intake.ItemsJSON == "" {
		return 0, &ValidationError{Message: "Missing required fields."}
	}
	if intake.UserID == 0 {
		return 0, &AuthError{Message: "Invalid user token."}
	}

	var cartItems []IntakeItem
	if err := json.Unmarshal([]byte(intake.ItemsJSON), &cartItems); err != nil {
		return 0, &ValidationError{Message: "Invalid items format."}
	}
	if len(cartItems) == 0 {
		return 0, &ValidationError{Message: "Items array is empty or invalid."}
	}

	// Shipping fee lookup failure must not block checkout; the fee is
	// simply zero for this order.
	shippingFee, err := s.shipping.ShippingFee()
	if err != nil {
		log.Printf("Shipping fee lookup failed, defaulting to 0: %v", err)
		shippingFee = 0
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(cartItems))
	records := make([]models.SalesRecord, 0, len(cartItems))
	for _, item := range cartItems {
		quantity := int(item.Quantity)
		price := float64(item.Price)
		lineTotal := price * float64(quantity)
		subtotal += lineTotal

		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    quantity,
			Price:       price,
		})
		records = append(records, models.SalesRecord{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    quantity,
			Price:       price,
			LineTotal:   lineTotal,
		})
	}

	order := &models.Order{
		UserID:        intake.UserID,
		PaymentMethod: intake.PaymentMethod,
		Address:       intake.Address,
		Phone:         intake.Phone,
		ReceiptPath:   intake.ReceiptPath,
		ShippingFee:   shippingFee,
		Total:         subtotal + shippingFee,
		Status:        models.StatusPending,
	}

	if err := s.orderRepo.CreateWithItems(order, items, records); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *orderService) List() ([]OrderView, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	customers := make(map[uint]*models.User)
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		user, ok := customers[order.UserID]
		if !ok {
			user, err = s.userRepo.GetByID(order.UserID)
			if err != nil {
				return nil, err
			}
			customers[order.UserID] = user
		}

		view := OrderView{Order: order}
		if user != nil {
			view.CustomerName = user.Name
			view.CustomerEmail = user.Email
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *orderService) Get(id uint) (*OrderView, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Message: "Order not found."}
	}

	view := &OrderView{Order: *order}
	user, err := s.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		view.CustomerName = user.Name
		view.CustomerEmail = user.Email
	}
	return view, nil
}

func (s *orderService) UpdateStatus(id uint, status string) error {
	if !models.IsValidOrderStatus(status) {
		return &ValidationError{Message: "Invalid status value."}
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return &NotFoundError{Message: "Order not found."}
	}

	// Delivered orders are purged after a grace period. Status and due time
	// go down in one write so the schedule can never be missing, and the due
	// time lives on the row so it survives restarts. Moving the order away
	// from Delivered afterwards does not clear it; the sweep re-checks
	// status before deleting.
	if status == models.StatusDelivered {
		return s.orderRepo.MarkDelivered(id, time.Now().Add(s.purgeDelay))
	}
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *orderService) Delete(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return &NotFoundError{Message: "Order not found or already deleted."}
	}
	return s.orderRepo.Delete(id)
}

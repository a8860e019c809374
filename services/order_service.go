package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"property-backend/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrTableNotFound = errors.New("table not found")
	ErrNoOrderItems  = errors.New("order must contain at least one item")
	ErrBadQuantity   = errors.New("item quantity must be at least 1")
	ErrNoOrderTarget = errors.New("order needs a table or a room")
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderLine struct {
	ItemID              uint   `json:"item_id" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,gte=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderInput struct {
	OrderSource string      `json:"order_source" validate:"required"`
	TableID     *uint       `json:"table_id"`
	RoomID      *uint       `json:"room_id"`
	Items       []OrderLine `json:"items" validate:"required,min=1,dive"`
}

// OrderView flattens the table/room references the dashboard displays
// next to each order.
type OrderView struct {
	models.Order
	TableNumber *int    `json:"table_number,omitempty"`
	RoomNumber  *string `json:"room_number,omitempty"`
}

// Create inserts the order and all of its line items in one
// transaction. Each line captures the menu item's price as it stands
// right now; the accumulated total is written back onto the order.
// A line referencing a missing menu item aborts the whole operation,
// leaving no order and no items behind. Table orders flip the table to
// occupied.
func (s *OrderService) Create(input CreateOrderInput) (models.Order, error) {
	if len(input.Items) == 0 {
		return models.Order{}, ErrNoOrderItems
	}
	if input.TableID == nil && input.RoomID == nil {
		return models.Order{}, ErrNoOrderTarget
	}
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return models.Order{}, ErrBadQuantity
		}
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			OrderSource: input.OrderSource,
			TableID:     input.TableID,
			RoomID:      input.RoomID,
			Status:      models.OrderPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		var total float64
		for _, line := range input.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("item %d: %w", line.ItemID, ErrMenuItemNotFound)
				}
				return fmt.Errorf("failed to load menu item %d: %w", line.ItemID, err)
			}

			orderItem := models.OrderItem{
				OrderID:             order.ID,
				ItemID:              line.ItemID,
				Quantity:            line.Quantity,
				SpecialInstructions: line.SpecialInstructions,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			total += item.Price * float64(line.Quantity)
		}

		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return fmt.Errorf("failed to store order total: %w", err)
		}

		if input.TableID != nil {
			result := tx.Model(&models.RestaurantTable{}).
				Where("id = ?", *input.TableID).
				Update("status", models.TableOccupied)
			if result.Error != nil {
				return fmt.Errorf("failed to occupy table: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrTableNotFound
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderService) List() ([]OrderView, error) {
	var orders []models.Order
	err := s.DB.
		Preload("Items.MenuItem").
		Preload("Table").
		Preload("Room").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{Order: order}
		if order.Table != nil {
			n := order.Table.TableNumber
			view.TableNumber = &n
		}
		if order.Room != nil {
			n := order.Room.RoomNumber
			view.RoomNumber = &n
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus overwrites the order status. Only known status values
// are accepted; any known-to-known transition is legal, including
// backwards, so staff can correct mistakes.
func (s *OrderService) UpdateStatus(id uint, status string) (models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	if err := s.DB.Model(&order).Update("status", parsed).Error; err != nil {
		return models.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

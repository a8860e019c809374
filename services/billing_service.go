package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"property-backend/models"
)

type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// BilledOrder is one open order on the bill with its recomputed
// subtotal. Item prices come from the menu join, so the bill reflects
// current menu prices while order.total_amount stays frozen at
// creation time.
type BilledOrder struct {
	models.Order
	Subtotal float64 `json:"subtotal"`
}

type Bill struct {
	Orders      []BilledOrder `json:"orders"`
	Total       float64       `json:"total"`
	TableNumber int           `json:"table_number,omitempty"`
}

func (s *BillingService) ListTables() ([]models.RestaurantTable, error) {
	var tables []models.RestaurantTable
	err := s.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

// GetBill aggregates every unpaid order on a table. A table with no
// open orders yields an empty bill with total 0; that is a valid
// state, not an error.
func (s *BillingService) GetBill(tableID uint) (Bill, error) {
	var orders []models.Order
	err := s.DB.
		Preload("Items.MenuItem").
		Preload("Table").
		Where("table_id = ? AND status <> ?", tableID, models.OrderPaid).
		Find(&orders).Error
	if err != nil {
		return Bill{}, fmt.Errorf("failed to load open orders: %w", err)
	}

	bill := Bill{Orders: []BilledOrder{}}
	for _, order := range orders {
		var subtotal float64
		for _, item := range order.Items {
			subtotal += item.MenuItem.Price * float64(item.Quantity)
		}
		bill.Orders = append(bill.Orders, BilledOrder{Order: order, Subtotal: subtotal})
		bill.Total += subtotal
		if order.Table != nil {
			bill.TableNumber = order.Table.TableNumber
		}
	}
	return bill, nil
}

// Settle marks every open order on the table paid, records the payment
// method on each, and frees the table. Partial settlement is not
// supported. With no open orders the update touches zero rows and the
// call is a no-op, not an error.
func (s *BillingService) Settle(tableID uint, paymentMethod string) (int64, error) {
	var settled int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": models.OrderPaid}
		if paymentMethod != "" {
			updates["payment_method"] = paymentMethod
		}

		result := tx.Model(&models.Order{}).
			Where("table_id = ? AND status <> ?", tableID, models.OrderPaid).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to settle orders: %w", result.Error)
		}
		settled = result.RowsAffected

		if err := tx.Model(&models.RestaurantTable{}).
			Where("id = ?", tableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return fmt.Errorf("failed to release table: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if settled == 0 {
		logrus.WithField("table_id", tableID).Info("settle called with no open orders")
	}
	return settled, nil
}

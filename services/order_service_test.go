package services

import (
	"errors"
	"testing"

	"property-backend/models"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 1, models.TableAvailable)
	itemA := seedMenuItem(t, db, "Burger", 10.00)
	itemB := seedMenuItem(t, db, "Salad", 5.00)

	order, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items: []OrderLine{
			{ItemID: itemA.ID, Quantity: 2},
			{ItemID: itemB.ID, Quantity: 1, SpecialInstructions: "no dressing"},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.TotalAmount != 25.00 {
		t.Errorf("total_amount = %v, want 25.00", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Errorf("status = %q, want %q", order.Status, models.OrderPending)
	}

	var reloadedTable models.RestaurantTable
	db.First(&reloadedTable, table.ID)
	if reloadedTable.Status != models.TableOccupied {
		t.Errorf("table status = %q, want %q", reloadedTable.Status, models.TableOccupied)
	}

	var itemCount int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if itemCount != 2 {
		t.Errorf("order item count = %d, want 2", itemCount)
	}
}

func TestOrderTotalFrozenAtCreation(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 1, models.TableAvailable)
	item := seedMenuItem(t, db, "Burger", 10.00)

	order, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// a later menu price change must not rewrite history
	if err := db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("price", 99.00).Error; err != nil {
		t.Fatalf("failed to change menu price: %v", err)
	}

	var reloaded models.Order
	db.First(&reloaded, order.ID)
	if reloaded.TotalAmount != 30.00 {
		t.Errorf("total_amount = %v, want 30.00", reloaded.TotalAmount)
	}
}

func TestCreateOrderMissingItemLeavesNothingBehind(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 1, models.TableAvailable)
	item := seedMenuItem(t, db, "Burger", 10.00)

	_, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items: []OrderLine{
			{ItemID: item.ID, Quantity: 1},
			{ItemID: 999, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("Create error = %v, want ErrMenuItemNotFound", err)
	}

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	if orderCount != 0 || itemCount != 0 {
		t.Errorf("orders = %d, order_items = %d after rollback, want 0 and 0", orderCount, itemCount)
	}

	var reloadedTable models.RestaurantTable
	db.First(&reloadedTable, table.ID)
	if reloadedTable.Status != models.TableAvailable {
		t.Errorf("table status = %q, want %q", reloadedTable.Status, models.TableAvailable)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 1, models.TableAvailable)
	item := seedMenuItem(t, db, "Burger", 10.00)

	if _, err := svc.Create(CreateOrderInput{OrderSource: "restaurant", TableID: &table.ID}); !errors.Is(err, ErrNoOrderItems) {
		t.Errorf("empty items error = %v, want ErrNoOrderItems", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 1}},
	}); !errors.Is(err, ErrNoOrderTarget) {
		t.Errorf("no target error = %v, want ErrNoOrderTarget", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 0}},
	}); !errors.Is(err, ErrBadQuantity) {
		t.Errorf("zero quantity error = %v, want ErrBadQuantity", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 1}},
	}); err != nil {
		t.Errorf("valid order returned error: %v", err)
	}

	missingTable := uint(999)
	if _, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &missingTable,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 1}},
	}); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("missing table error = %v, want ErrTableNotFound", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 1, models.TableAvailable)
	item := seedMenuItem(t, db, "Burger", 10.00)

	order, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, "served")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.OrderServed {
		t.Errorf("status = %q, want %q", updated.Status, models.OrderServed)
	}

	// backward transitions stay legal for manual correction
	if _, err := svc.UpdateStatus(order.ID, "pending"); err != nil {
		t.Errorf("backward transition returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "vaporized"); !errors.Is(err, models.ErrUnknownStatus) {
		t.Errorf("bad status error = %v, want ErrUnknownStatus", err)
	}
	if _, err := svc.UpdateStatus(999, "served"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("missing id error = %v, want ErrOrderNotFound", err)
	}
}

func TestListOrdersIncludesTableNumber(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	table := seedTable(t, db, 7, models.TableAvailable)
	item := seedMenuItem(t, db, "Burger", 10.00)

	if _, err := svc.Create(CreateOrderInput{
		OrderSource: "restaurant",
		TableID:     &table.ID,
		Items:       []OrderLine{{ItemID: item.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	views, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("view count = %d, want 1", len(views))
	}
	if views[0].TableNumber == nil || *views[0].TableNumber != 7 {
		t.Errorf("table_number = %v, want 7", views[0].TableNumber)
	}
	if len(views[0].Items) != 1 {
		t.Errorf("items = %d, want 1", len(views[0].Items))
	}
}

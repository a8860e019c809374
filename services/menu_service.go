package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"property-backend/models"
	"property-backend/utils"
)

var (
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrNegativePrice    = errors.New("price must not be negative")
)

var menuItemUpdateFields = []string{
	"name", "description", "price", "image_url", "category", "tags", "available",
}

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

type CreateMenuInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateMenuItemInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (s *MenuService) List() ([]models.Menu, error) {
	var menus []models.Menu
	err := s.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.created_at")
		}).
		Order("created_at DESC").
		Find(&menus).Error
	return menus, err
}

func (s *MenuService) CreateMenu(input CreateMenuInput) (models.Menu, error) {
	menu := models.Menu{Name: input.Name, Description: input.Description}
	if err := s.DB.Create(&menu).Error; err != nil {
		return models.Menu{}, fmt.Errorf("failed to create menu: %w", err)
	}
	menu.Items = []models.MenuItem{}
	return menu, nil
}

func (s *MenuService) AddItem(menuID uint, input CreateMenuItemInput) (models.MenuItem, error) {
	if input.Price < 0 {
		return models.MenuItem{}, ErrNegativePrice
	}

	var menu models.Menu
	if err := s.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrMenuNotFound
		}
		return models.MenuItem{}, err
	}

	item := models.MenuItem{
		MenuID:      menuID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Available:   true,
	}
	if len(input.Tags) > 0 {
		tags, err := utils.ToJSON(input.Tags)
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("failed to encode tags: %w", err)
		}
		item.Tags = tags
	}

	if err := s.DB.Create(&item).Error; err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

// UpdateItem applies a partial update from an allow-listed field set.
func (s *MenuService) UpdateItem(id uint, payload map[string]interface{}) (models.MenuItem, error) {
	updates, err := utils.BuildUpdates(payload, menuItemUpdateFields...)
	if err != nil {
		return models.MenuItem{}, err
	}
	if raw, ok := updates["price"]; ok {
		price, ok := raw.(float64)
		if !ok || price < 0 {
			return models.MenuItem{}, ErrNegativePrice
		}
	}
	if raw, ok := updates["tags"]; ok {
		tags, err := utils.ToJSON(raw)
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("failed to encode tags: %w", err)
		}
		updates["tags"] = tags
	}

	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, err
	}

	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to update menu item: %w", err)
	}

	err = s.DB.First(&item, id).Error
	return item, err
}

func (s *MenuService) DeleteItem(id uint) error {
	result := s.DB.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

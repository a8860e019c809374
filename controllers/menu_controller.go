package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-backend/services"
	"property-backend/utils"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

func (mc *MenuController) List(c *gin.Context) {
	menus, err := mc.Svc.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list menus")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, menus)
}

func (mc *MenuController) Create(c *gin.Context) {
	var input services.CreateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	menu, err := mc.Svc.CreateMenu(input)
	if err != nil {
		logrus.WithError(err).Error("failed to create menu")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, menu)
}

func (mc *MenuController) AddItem(c *gin.Context) {
	menuID, ok := parseID(c)
	if !ok {
		return
	}

	var input services.CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := mc.Svc.AddItem(menuID, input)
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		utils.JSONError(c, http.StatusNotFound, "menu not found")
	case errors.Is(err, services.ErrNegativePrice):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to add menu item")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusCreated, item)
	}
}

func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item, err := mc.Svc.UpdateItem(id, payload)
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "menu item not found")
	case isClientError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to update menu item")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, item)
	}
}

func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := mc.Svc.DeleteItem(id)
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "menu item not found")
	case err != nil:
		logrus.WithError(err).Error("failed to delete menu item")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
	}
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"
)

var validate = validator.New()

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list orders")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (oc *OrderController) Create(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := oc.Svc.Create(input)
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTableNotFound):
		utils.JSONError(c, http.StatusNotFound, "table not found")
	case errors.Is(err, services.ErrNoOrderItems),
		errors.Is(err, services.ErrNoOrderTarget),
		errors.Is(err, services.ErrBadQuantity):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to create order")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusCreated, order)
	}
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	order, err := oc.Svc.UpdateStatus(id, payload.Status)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.JSONError(c, http.StatusNotFound, "order not found")
	case errors.Is(err, models.ErrUnknownStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to update order status")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, order)
	}
}

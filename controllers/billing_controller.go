package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-backend/services"
	"property-backend/utils"
)

type BillingController struct {
	Svc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{Svc: svc}
}

func parseTableID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("tableId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid table id")
		return 0, false
	}
	return uint(id), true
}

func (bc *BillingController) ListTables(c *gin.Context) {
	tables, err := bc.Svc.ListTables()
	if err != nil {
		logrus.WithError(err).Error("failed to list tables")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tables)
}

func (bc *BillingController) GetBill(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	bill, err := bc.Svc.GetBill(tableID)
	if err != nil {
		logrus.WithError(err).Error("failed to build bill")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

type payPayload struct {
	PaymentMethod string `json:"payment_method"`
}

func (bc *BillingController) Pay(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	var payload payPayload
	// body is optional; an absent payment method is accepted
	_ = c.ShouldBindJSON(&payload)

	settled, err := bc.Svc.Settle(tableID, payload.PaymentMethod)
	if err != nil {
		logrus.WithError(err).Error("failed to settle table")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":        "Payment processed successfully",
		"settled_orders": settled,
	})
}

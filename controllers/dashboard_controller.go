package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-backend/services"
	"property-backend/utils"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (dc *DashboardController) KPIs(c *gin.Context) {
	report, err := dc.Svc.KPIs()
	if err != nil {
		logrus.WithError(err).Error("failed to compute dashboard KPIs")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (dc *DashboardController) Reservations(c *gin.Context) {
	category := c.Query("type")

	reservations, err := dc.Svc.ReservationsByCategory(category)
	switch {
	case errors.Is(err, services.ErrUnknownCategory):
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation type")
	case err != nil:
		logrus.WithError(err).Error("failed to list dashboard reservations")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, reservations)
	}
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-backend/services"
	"property-backend/utils"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (rc *ReservationController) List(c *gin.Context) {
	reservations, err := rc.Svc.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list reservations")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reservation, err := rc.Svc.GetByID(id)
	switch {
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
	case err != nil:
		logrus.WithError(err).Error("failed to load reservation")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, reservation)
	}
}

func (rc *ReservationController) Create(c *gin.Context) {
	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	reservation, err := rc.Svc.Create(input)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "room is not available")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to create reservation")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusCreated, reservation)
	}
}

func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	reservation, err := rc.Svc.Update(id, payload)
	switch {
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
	case isClientError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to update reservation")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, reservation)
	}
}

func (rc *ReservationController) Calendar(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "start and end query parameters are required")
		return
	}

	reservations, err := rc.Svc.CalendarRange(start, end)
	if err != nil {
		logrus.WithError(err).Error("failed to load calendar reservations")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (rc *ReservationController) Checkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reservation, err := rc.Svc.Checkout(id)
	switch {
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
	case err != nil:
		logrus.WithError(err).Error("failed to check out reservation")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, reservation)
	}
}

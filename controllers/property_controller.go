package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-backend/services"
	"property-backend/utils"
)

type PropertyController struct {
	Svc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{Svc: svc}
}

func (pc *PropertyController) List(c *gin.Context) {
	properties, err := pc.Svc.ListProperties()
	if err != nil {
		logrus.WithError(err).Error("failed to list properties")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

func (pc *PropertyController) Create(c *gin.Context) {
	var input services.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	property, err := pc.Svc.CreateProperty(input)
	if err != nil {
		logrus.WithError(err).Error("failed to create property")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

func (pc *PropertyController) ListRooms(c *gin.Context) {
	rooms, err := pc.Svc.ListRooms()
	if err != nil {
		logrus.WithError(err).Error("failed to list rooms")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (pc *PropertyController) CreateRoom(c *gin.Context) {
	var input services.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := pc.Svc.CreateRoom(input)
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		utils.JSONError(c, http.StatusNotFound, "property not found")
	case err != nil:
		logrus.WithError(err).Error("failed to create room")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusCreated, room)
	}
}

func (pc *PropertyController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := pc.Svc.UpdateRoom(id, payload)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case isClientError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		logrus.WithError(err).Error("failed to update room")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, room)
	}
}

func (pc *PropertyController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := pc.Svc.DeleteRoom(id)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case err != nil:
		logrus.WithError(err).Error("failed to delete room")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	default:
		utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListByClient
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListByClient,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// LIST (by client)
// ======================================================

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	raw := c.Query("clientId")
	if raw == "" {
		httperr.Write(c, http.StatusBadRequest, "clientId query parameter is required")
		return
	}

	clientID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid clientId")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), uint(clientID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	views := make([]dto.AppointmentView, 0, len(aps))
	for i := range aps {
		views = append(views, dto.NewAppointmentView(&aps[i]))
	}
	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input: no JSON received")
		return
	}

	if err := validators.NewAppointment(payload); err != nil {
		httperr.WriteError(c, err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		ClientID:  payload["clientId"],
		BarberID:  payload["barberId"],
		ServiceID: payload["serviceId"],
		Date:      payloadString(payload, "date"),
		Time:      payloadString(payload, "time"),
		Status:    payloadString(payload, "status"),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentView(ap))
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

// ======================================================
// PARTIAL UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, payload)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	// 204 with a body is kept for compatibility with existing consumers.
	c.JSON(http.StatusNoContent, gin.H{"message": "Appointment deleted"})
}

// pathID parses the :id segment; non-numeric ids read as absent resources.
func (h *AppointmentHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Write(c, http.StatusNotFound, "Appointment not found")
		return 0, false
	}
	return uint(id), true
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type StaffHandler struct {
	Service *services.StaffService
}

func NewStaffHandler(s *services.StaffService) *StaffHandler {
	return &StaffHandler{Service: s}
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	staff, err := h.Service.CreateStaff(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, staff)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid staff id")
		return
	}

	staff, err := h.Service.GetStaff(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Service.ListStaff(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid staff id")
		return
	}

	var req models.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	staff, err := h.Service.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid staff id")
		return
	}

	if err := h.Service.DeleteStaff(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}

	utils.Message(w, http.StatusOK, "Staff removed")
}

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

type StaffPaymentHandler struct {
	Service *services.StaffPaymentService
}

func NewStaffPaymentHandler(s *services.StaffPaymentService) *StaffPaymentHandler {
	return &StaffPaymentHandler{Service: s}
}

func (h *StaffPaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.CreatePayment(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, payment)
}

func (h *StaffPaymentHandler) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.Atoi(mux.Vars(r)["staffId"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid staff id")
		return
	}

	payments, err := h.Service.ListByStaff(r.Context(), staffID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payments)
}

func (h *StaffPaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	var req models.UpdateStaffPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.UpdatePayment(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payment)
}

func (h *StaffPaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	if err := h.Service.DeletePayment(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}

	utils.Message(w, http.StatusOK, "Payment removed")
}

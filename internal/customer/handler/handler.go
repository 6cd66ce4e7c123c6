package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/customer"
	"github.com/abinsights/analytics-service/internal/customer/dto"
	"github.com/abinsights/analytics-service/internal/httputil"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger *zap.Logger
}

func NewCustomerHandler(uc customer.UseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) Register(r *mux.Router) {
	r.HandleFunc("/customers", h.List).Methods(http.MethodGet)
	r.HandleFunc("/customers/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/customers", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	c, err := h.uc.GetCustomer(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := httputil.PaginationParams(r)

	customers, err := h.uc.ListCustomers(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCustomerInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	c, err := h.uc.CreateCustomer(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var input dto.UpdateCustomerInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	c, err := h.uc.UpdateCustomer(r.Context(), id, &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.uc.DeleteCustomer(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Customer deleted successfully")
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/httputil"
	"github.com/abinsights/analytics-service/internal/product"
	"github.com/abinsights/analytics-service/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(r *mux.Router) {
	r.HandleFunc("/products", h.List).Methods(http.MethodGet)
	r.HandleFunc("/products/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/products", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/products/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := httputil.PaginationParams(r)

	products, err := h.uc.ListProducts(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var input dto.UpdateProductInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), id, &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Product deleted successfully")
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/httputil"
	"github.com/abinsights/analytics-service/internal/result"
	"github.com/abinsights/analytics-service/internal/result/dto"
)

type ResultHandler struct {
	uc     result.UseCase
	logger *zap.Logger
}

func NewResultHandler(uc result.UseCase, log *zap.Logger) *ResultHandler {
	return &ResultHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ResultHandler) Register(r *mux.Router) {
	r.HandleFunc("/results", h.List).Methods(http.MethodGet)
	r.HandleFunc("/results/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/results", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/results/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/results/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/results/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/results/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	res, err := h.uc.GetResult(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := httputil.PaginationParams(r)

	results, err := h.uc.ListResults(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list results", zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, results)
}

func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateResultInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	res, err := h.uc.CreateResult(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var input dto.UpdateResultInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	res, err := h.uc.UpdateResult(r.Context(), id, &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.uc.DeleteResult(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Result deleted successfully")
}

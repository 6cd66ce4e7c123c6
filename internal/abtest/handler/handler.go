package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/abtest"
	"github.com/abinsights/analytics-service/internal/abtest/dto"
	"github.com/abinsights/analytics-service/internal/httputil"
)

type ABTestHandler struct {
	uc     abtest.UseCase
	logger *zap.Logger
}

func NewABTestHandler(uc abtest.UseCase, log *zap.Logger) *ABTestHandler {
	return &ABTestHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ABTestHandler) Register(r *mux.Router) {
	r.HandleFunc("/ab-tests", h.List).Methods(http.MethodGet)
	r.HandleFunc("/ab-tests/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/ab-tests", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/ab-tests/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/ab-tests/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/ab-tests/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/ab-tests/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *ABTestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	t, err := h.uc.GetABTest(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *ABTestHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := httputil.PaginationParams(r)

	tests, err := h.uc.ListABTests(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list ab tests", zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tests)
}

func (h *ABTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateABTestInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	t, err := h.uc.CreateABTest(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *ABTestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var input dto.UpdateABTestInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	t, err := h.uc.UpdateABTest(r.Context(), id, &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *ABTestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.uc.DeleteABTest(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "AB test deleted successfully")
}

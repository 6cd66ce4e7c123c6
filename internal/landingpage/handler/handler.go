package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/httputil"
	"github.com/abinsights/analytics-service/internal/landingpage"
	"github.com/abinsights/analytics-service/internal/landingpage/dto"
)

type LandingPageHandler struct {
	uc     landingpage.UseCase
	logger *zap.Logger
}

func NewLandingPageHandler(uc landingpage.UseCase, log *zap.Logger) *LandingPageHandler {
	return &LandingPageHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LandingPageHandler) Register(r *mux.Router) {
	r.HandleFunc("/landing-pages", h.List).Methods(http.MethodGet)
	r.HandleFunc("/landing-pages/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/landing-pages", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/landing-pages/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/landing-pages/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/landing-pages/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/landing-pages/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *LandingPageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	lp, err := h.uc.GetLandingPage(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lp)
}

func (h *LandingPageHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := httputil.PaginationParams(r)

	pages, err := h.uc.ListLandingPages(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list landing pages", zap.Error(err))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pages)
}

func (h *LandingPageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateLandingPageInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	lp, err := h.uc.CreateLandingPage(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lp)
}

func (h *LandingPageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var input dto.UpdateLandingPageInput
	if !httputil.DecodeJSON(w, r, &input) {
		return
	}

	lp, err := h.uc.UpdateLandingPage(r.Context(), id, &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lp)
}

func (h *LandingPageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.uc.DeleteLandingPage(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Landing page deleted successfully")
}

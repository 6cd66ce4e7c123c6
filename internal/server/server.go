// Package server assembles the HTTP API: one CRUD surface per entity plus
// health and metrics endpoints.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	abtestH "github.com/abinsights/analytics-service/internal/abtest/handler"
	abtestRepo "github.com/abinsights/analytics-service/internal/abtest/repository"
	abtestUC "github.com/abinsights/analytics-service/internal/abtest/usecase"
	customerH "github.com/abinsights/analytics-service/internal/customer/handler"
	customerRepo "github.com/abinsights/analytics-service/internal/customer/repository"
	customerUC "github.com/abinsights/analytics-service/internal/customer/usecase"
	landingH "github.com/abinsights/analytics-service/internal/landingpage/handler"
	landingRepo "github.com/abinsights/analytics-service/internal/landingpage/repository"
	landingUC "github.com/abinsights/analytics-service/internal/landingpage/usecase"
	productH "github.com/abinsights/analytics-service/internal/product/handler"
	productRepo "github.com/abinsights/analytics-service/internal/product/repository"
	productUC "github.com/abinsights/analytics-service/internal/product/usecase"
	resultH "github.com/abinsights/analytics-service/internal/result/handler"
	resultRepo "github.com/abinsights/analytics-service/internal/result/repository"
	resultUC "github.com/abinsights/analytics-service/internal/result/usecase"

	"github.com/abinsights/analytics-service/internal/metrics"
	"github.com/abinsights/analytics-service/internal/middleware"
)

// NewRouter wires repositories, usecases and handlers for all five entities
// onto one mux router.
func NewRouter(db *sqlx.DB, logger *zap.Logger, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	customerH.NewCustomerHandler(
		customerUC.NewCustomerUseCase(customerRepo.NewPGRepository(db), logger), logger,
	).Register(r)

	productH.NewProductHandler(
		productUC.NewProductUseCase(productRepo.NewPGRepository(db), logger), logger,
	).Register(r)

	landingH.NewLandingPageHandler(
		landingUC.NewLandingPageUseCase(landingRepo.NewPGRepository(db), logger), logger,
	).Register(r)

	abtestH.NewABTestHandler(
		abtestUC.NewABTestUseCase(abtestRepo.NewPGRepository(db), logger), logger,
	).Register(r)

	resultH.NewResultHandler(
		resultUC.NewResultUseCase(resultRepo.NewPGRepository(db), logger), logger,
	).Register(r)

	return r
}

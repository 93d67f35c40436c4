// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/workforce-service/internal/db"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/accounts"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
	"github.com/canonical/workforce-service/pkg/dropdowns"
	"github.com/canonical/workforce-service/pkg/employees"
	"github.com/canonical/workforce-service/pkg/holidays"
	"github.com/canonical/workforce-service/pkg/leave"
	"github.com/canonical/workforce-service/pkg/metrics"
	"github.com/canonical/workforce-service/pkg/rbac"
	"github.com/canonical/workforce-service/pkg/schedules"
	"github.com/canonical/workforce-service/pkg/settings"
	"github.com/canonical/workforce-service/pkg/status"
	"github.com/canonical/workforce-service/pkg/workspaces"
)

type RouterConfig struct {
	JwtSecret          string
	DefaultUserRole    string
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		// Mutating requests run in one transaction, rolled back on any
		// status >= 400. Multi-row bootstraps rely on this.
		db.TransactionMiddleware(dbClient, logger),
	)

	tokens := authentication.NewTokenService(cfg.JwtSecret, tracer, monitor, logger)
	resolver := authorization.NewResolver(s, tracer, monitor, logger)
	authn := authentication.NewMiddleware(tokens, s, tracer, monitor, logger)
	authz := authorization.NewMiddleware(resolver, tracer, monitor, logger)

	rbacService := rbac.NewService(s, tracer, monitor, logger)
	accountsService := accounts.NewService(s, rbacService, tokens, cfg.DefaultUserRole, tracer, monitor, logger)
	workspacesService := workspaces.NewService(s, rbacService, tokens, tracer, monitor, logger)
	employeesService := employees.NewService(s, tracer, monitor, logger)
	holidaysService := holidays.NewService(s, tracer, monitor, logger)
	leaveService := leave.NewService(s, tracer, monitor, logger)
	dropdownsService := dropdowns.NewService(s, tracer, monitor, logger)
	schedulesService := schedules.NewService(s, tracer, monitor, logger)
	settingsService := settings.NewService(s, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	accounts.NewPublicAPI(accountsService, tracer, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())

		accounts.NewAPI(accountsService, authz, tracer, logger).RegisterEndpoints(r)
		workspaces.NewAPI(workspacesService, authz, tracer, logger).RegisterEndpoints(r)
		rbac.NewAPI(rbacService, resolver, authz, tracer, logger).RegisterEndpoints(r)
		employees.NewAPI(employeesService, authz, tracer, logger).RegisterEndpoints(r)
		holidays.NewAPI(holidaysService, authz, tracer, logger).RegisterEndpoints(r)
		leave.NewAPI(leaveService, authz, tracer, logger).RegisterEndpoints(r)
		dropdowns.NewAPI(dropdownsService, authz, tracer, logger).RegisterEndpoints(r)
		schedules.NewAPI(schedulesService, authz, tracer, logger).RegisterEndpoints(r)
		settings.NewAPI(settingsService, authz, tracer, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

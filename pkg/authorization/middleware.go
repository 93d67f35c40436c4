// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
	"net/http"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/authentication"
)

type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RequirePermissions gates the wrapped handler on the caller holding every
// listed permission in the token's tenant. Denials list the missing codes.
func (m *Middleware) RequirePermissions(required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequirePermissions")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				// Authenticate must run first, treat a missing principal
				// as an unauthenticated request.
				types.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			missing, err := m.resolver.Check(ctx, principal.UserID, principal.TenantID, required)
			if err != nil {
				m.logger.Errorf("permission check failed: %v", err)
				types.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if len(missing) > 0 {
				m.logger.Security().AuthzFailure(principal.UserID, fmt.Sprintf("%v", missing))
				types.WriteJSON(w, http.StatusForbidden, types.ErrorResponse{
					Error:              "missing permissions",
					MissingPermissions: missing,
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

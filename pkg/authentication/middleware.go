// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

// unauthorizedMessage is the single 401 body. A forged token, an expired
// token and a token for a tenant the user no longer belongs to are not
// distinguishable from the outside.
const unauthorizedMessage = "invalid or expired token"

type Middleware struct {
	tokens      TokenServiceInterface
	memberships MembershipCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tokens TokenServiceInterface, memberships MembershipCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:      tokens,
		memberships: memberships,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Authenticate validates the bearer token, re-checks tenant membership and
// injects the principal into the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w)
				return
			}

			claims, err := m.tokens.ValidateToken(ctx, token)
			if err != nil {
				m.logger.Security().AuthFailure("unknown")
				m.unauthorizedResponse(w)
				return
			}

			// Membership is re-checked on every request so a revoked
			// membership invalidates outstanding tokens immediately.
			isMember, err := m.memberships.IsMember(ctx, claims.UserID, claims.TenantID)
			if err != nil {
				m.logger.Errorf("membership check failed: %v", err)
				types.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !isMember {
				m.logger.Security().AuthFailure(claims.UserID)
				m.unauthorizedResponse(w)
				return
			}

			ctx = WithPrincipal(ctx, &Principal{UserID: claims.UserID, TenantID: claims.TenantID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter) {
	types.WriteError(w, http.StatusUnauthorized, unauthorizedMessage)
}

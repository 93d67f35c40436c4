// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"sort"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

// Resolver computes effective permissions from the role tables. No caching,
// a role or grant change is visible on the next request.
type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (r *Resolver) EffectivePermissions(ctx context.Context, userID, tenantID string) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "authorization.Resolver.EffectivePermissions")
	defer span.End()

	codes, err := r.storage.ListEffectivePermissionCodes(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve permissions: %w", err)
	}

	return codes, nil
}

func (r *Resolver) Check(ctx context.Context, userID, tenantID string, required []string) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "authorization.Resolver.Check")
	defer span.End()

	held, err := r.EffectivePermissions(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	heldSet := make(map[string]struct{}, len(held))
	for _, code := range held {
		heldSet[code] = struct{}{}
	}

	var missing []string
	for _, code := range required {
		if _, ok := heldSet[code]; !ok {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)

	return missing, nil
}

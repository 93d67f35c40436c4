// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/authentication"
)

var (
	tokenUserID   string
	tokenTenantID string
	tokenSecret   string
	tokenTTL      time.Duration
)

// tokenCmd mints a development token with the given secret, useful for
// poking at a local instance without going through login.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed access token",
	Run: func(cmd *cobra.Command, args []string) {
		tokens := authentication.NewTokenService(
			tokenSecret,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logging.NewNoopLogger(),
		)

		token, err := tokens.IssueToken(cmd.Context(), tokenUserID, tokenTenantID, tokenTTL)
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "Subject user ID")
	tokenCmd.Flags().StringVar(&tokenTenantID, "tenant-id", "", "Tenant the token is scoped to")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", authentication.DefaultTokenTTL, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("user-id")
	_ = tokenCmd.MarkFlagRequired("tenant-id")
	_ = tokenCmd.MarkFlagRequired("secret")
}

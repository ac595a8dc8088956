// Command token prints a signed API token, e.g. for POST /api/v1/admin/reload.
package main

import (
	"fmt"
	"os"

	"euler_offline/internal/common/security"
	"euler_offline/internal/domain/model"
	"euler_offline/internal/platform/config"

	"github.com/spf13/cobra"
)

var (
	subject string
	role    string
)

var rootCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed API token using JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if role != model.RoleAdmin && role != model.RoleUser {
			return fmt.Errorf("unknown role %q", role)
		}

		config.Load()
		security.InitJWT(config.AppConfig.JWTKey, config.AppConfig.JWTExp)

		token, err := security.GenerateToken(subject, role)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&subject, "sub", "admin", "token subject")
	rootCmd.Flags().StringVar(&role, "role", model.RoleAdmin, "role claim (admin or user)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fieldservice/cmd/bootstrap"
	"fieldservice/internal/domain/user"
	"fieldservice/internal/pkg/config"
	"fieldservice/internal/usecase/assignment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug information because of a misconfiguration.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           fieldservice
// @version         1.0
// @description     Bookings, assignment windows and the earnings ledger of a field-service studio.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 stopping server")
			return nil
		},
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldservice",
		Short:         "Field-service booking and assignment backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newScanExpiryCmd(), newIssueTokenCmd(), newCatalogCmd(), newOutboxCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the expiry worker",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(func() *gin.Engine { return gin.New() }),
				fx.Invoke(startServer),
			)

			if err := app.Start(context.Background()); err != nil {
				slog.Error("failed to start application", "error", err)
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				// Shutdown errors are reported but do not change the exit code.
				slog.Error("failed to stop application", "error", err)
			}

			slog.Info("application stopped")
			return nil
		},
	}
}

func newScanExpiryCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "scan-expiry",
		Short: "Run one expiry scan and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var engine assignment.Engine
			app := fx.New(
				bootstrap.CoreModule,
				fx.NopLogger,
				fx.Populate(&engine),
			)
			startCtx, cancel := context.WithTimeout(cmd.Context(), fx.DefaultTimeout)
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					slog.Error("failed to stop application", "error", err)
				}
			}()

			ctx, cancelScan := context.WithTimeout(cmd.Context(), timeout)
			defer cancelScan()
			res, err := engine.TickExpiryScan(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "scanned=%d released=%d skipped=%d fallback_recorded=%d failed=%d\n",
				res.Scanned, res.Released, res.Skipped, res.FallbackRecorded, res.Failed)
			return err
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "maximum duration of the scan")
	return cmd
}

func newIssueTokenCmd() *cobra.Command {
	var (
		rawID   string
		rawRole string
	)
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Mint an access token for an admin or a specialist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}
			role, err := user.NewRole(rawRole)
			if err != nil {
				return fmt.Errorf("invalid --role: %w", err)
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			svc, err := bootstrap.NewJWTService(cfg)
			if err != nil {
				return err
			}
			token, err := svc.GenerateToken(id, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&rawID, "id", "", "user id (the specialist id for specialists)")
	cmd.Flags().StringVar(&rawRole, "role", string(user.RoleSpecialist), "admin or specialist")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

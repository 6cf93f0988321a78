package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"fieldservice/cmd/bootstrap"
	"fieldservice/internal/domain/money"
	"fieldservice/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// withPool starts only the config, logger and db modules and hands the pool to fn.
func withPool(ctx context.Context, fn func(pool *pgxpool.Pool) error) error {
	var pool *pgxpool.Pool
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		fx.NopLogger,
		fx.Populate(&pool),
	)
	startCtx, cancel := context.WithTimeout(ctx, fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop application", "error", err)
		}
	}()
	return fn(pool)
}

func parsePrice(raw string) (money.Money, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return money.Zero(), fmt.Errorf("invalid price %q: want a non-negative integer", raw)
	}
	return money.New(v), nil
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain service prices and the product list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-service <service-type> <price>",
		Short: "Create or update the price of a service type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[1])
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				if err := repository.NewCatalogRepository(pool).UpsertServicePrice(cmd.Context(), args[0], price); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "service %s priced at %d\n", args[0], price.Amount())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-product <product-id> <name> <unit-price>",
		Short: "Create or update a product",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[2])
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				if err := repository.NewCatalogRepository(pool).UpsertProduct(cmd.Context(), args[0], args[1], price); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "product %s (%s) priced at %d\n", args[0], args[1], price.Amount())
				return nil
			})
		},
	})
	return cmd
}

func newOutboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect queued notification jobs",
	}

	var limit int32
	pending := &cobra.Command{
		Use:   "pending",
		Short: "List notification jobs that have not been delivered yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				jobs, err := repository.NewNotificationRepository(pool).PendingJobs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tKIND\tTOPIC\tRUN AT\tATTEMPTS")
				for _, j := range jobs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", j.ID, j.Kind, j.Topic, j.RunAt.Format("2006-01-02 15:04:05"), j.Attempts)
				}
				return w.Flush()
			})
		},
	}
	pending.Flags().Int32Var(&limit, "limit", 50, "maximum number of jobs to list")
	cmd.AddCommand(pending)
	return cmd
}

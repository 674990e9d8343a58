package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/currency"
	postgresRepo "github.com/iho/gobank/internal/adapter/repository/postgres"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/postgres"
)

type options struct {
	baseURL     string
	currencyURL string
	timeout     time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "gobank-cli",
		Short:         "GoBank CLI tool",
		Long:          `A command line interface for the GoBank report and currency services.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the report service")
	rootCmd.PersistentFlags().StringVar(&opts.currencyURL, "currency-url", "http://localhost:8082", "Base URL of the currency service")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		statementCmd(opts),
		analyticsCmd(opts),
		convertCmd(opts),
		migrateCmd(),
		seedCmd(),
	)

	return rootCmd
}

func statementCmd(opts *options) *cobra.Command {
	var targetCurrency, output string

	cmd := &cobra.Command{
		Use:   "statement <accountId>",
		Short: "Download an account statement PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID := args[0]
			query := url.Values{}
			if targetCurrency != "" {
				query.Set("targetCurrency", targetCurrency)
			}
			endpoint := opts.baseURL + "/api/report/account/" + url.PathEscape(accountID) + "/statement"
			if len(query) > 0 {
				endpoint += "?" + query.Encode()
			}

			body, err := doRequest(cmd.Context(), opts.timeout, http.MethodPost, endpoint)
			if err != nil {
				return err
			}

			if output == "" {
				output = domain.StatementFilename(accountID)
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, len(body))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetCurrency, "currency", "", "Currency to convert the balance to (default USD)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout (default statement-<accountId>.pdf)")

	return cmd
}

func analyticsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics <accountId>",
		Short: "Show account analytics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := doRequest(cmd.Context(), opts.timeout, http.MethodGet,
				opts.baseURL+"/api/report/analytics/"+url.PathEscape(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
}

func convertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount through the currency service",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("amount", args[0])
			query.Set("from", args[1])
			query.Set("to", args[2])

			body, err := doRequest(cmd.Context(), opts.timeout, http.MethodGet,
				opts.currencyURL+currency.ConvertPath+"?"+query.Encode())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	run := func(direction string, fn func(databaseURL, migrationsPath string) error) *cobra.Command {
		return &cobra.Command{
			Use:   direction,
			Short: "Apply " + direction + " migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				if err := fn(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s applied\n", direction)
				return nil
			},
		}
	}

	cmd.AddCommand(
		run("up", postgres.RunMigrations),
		run("down", postgres.RunMigrationsDown),
	)

	return cmd
}

func seedCmd() *cobra.Command {
	var accountCurrency string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo account with two transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			result, err := postgresRepo.NewSeeder(pool, postgresRepo.NewULIDGenerator()).Seed(cmd.Context(), accountCurrency)
			if err != nil {
				return err
			}

			printSeedResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountCurrency, "currency", domain.DefaultCurrency, "Account currency")

	return cmd
}

func printSeedResult(w io.Writer, result *postgresRepo.SeedResult) {
	fmt.Fprintf(w, "Account %s (%s) balance %s %s\n",
		result.Account.ID, result.Account.AccountNumber,
		domain.FormatBalance(result.Account.Balance), result.Account.Currency)
	for _, tx := range result.Transactions {
		fmt.Fprintf(w, "  %s %-8s %s %s\n", tx.ID, tx.Kind, domain.FormatBalance(tx.Amount), tx.Description)
	}
}

func doRequest(ctx context.Context, timeout time.Duration, method, endpoint string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed (status: %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	return body, nil
}

func printJSON(w io.Writer, body []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

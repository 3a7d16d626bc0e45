/**
 * @description
 * Demo binary for the akahu-go client library. It wires together the
 * configuration, a middleware-decorated transport and the client, then lists
 * the user's connected accounts and their recent transactions.
 *
 * The transport chain shows the composition the library is built around:
 * logging -> request-id tracing -> concurrency gate -> net/http.
 *
 * @dependencies
 * - github.com/joho/godotenv: optional .env loading for local runs.
 * - go.uber.org/zap: structured logging.
 */
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stanleykosi/akahu-go/internal/config"
	"github.com/stanleykosi/akahu-go/pkg/akahu"
	"github.com/stanleykosi/akahu-go/pkg/transport"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Load an optional .env file before reading the environment.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	httpTransport := transport.NewHTTPWithClient(&http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	})
	chain := transport.Logged(
		transport.Traced(
			transport.Gate(httpTransport, cfg.MaxInFlight),
		),
		logger.Named("transport"),
	)

	opts := []akahu.Option{akahu.WithTransport(chain)}
	if cfg.BaseURL != "" {
		opts = append(opts, akahu.WithBaseURL(cfg.BaseURL))
	}
	if cfg.AppSecret != "" {
		opts = append(opts, akahu.WithAppSecret(akahu.AppSecret(cfg.AppSecret)))
	}
	client, err := akahu.New(akahu.AppToken(cfg.AppToken), opts...)
	if err != nil {
		logger.Fatal("failed to construct client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	userToken := akahu.UserToken(cfg.UserToken)

	accounts, err := client.Accounts(ctx, userToken)
	if err != nil {
		logger.Fatal("failed to list accounts", zap.Error(err))
	}
	for _, account := range accounts {
		logger.Info("account",
			zap.String("id", string(account.ID)),
			zap.String("name", account.Name),
			zap.String("type", string(account.Kind)),
			zap.String("status", string(account.Status)),
			zap.String("balance", account.Balance.Current.String()),
			zap.String("currency", account.Balance.Currency.Code()),
		)
	}

	// Start is exclusive and end is inclusive, so this covers
	// (now-lookback, now].
	end := akahu.NewTime(time.Now())
	start := akahu.NewTime(end.AddDate(0, 0, -cfg.LookbackDays))
	page, err := client.Transactions(ctx, userToken, akahu.TransactionQuery{
		Start: &start,
		End:   &end,
	})
	if err != nil {
		logger.Fatal("failed to list transactions", zap.Error(err))
	}
	for _, tx := range page.Items {
		fields := []zap.Field{
			zap.String("id", string(tx.ID)),
			zap.String("account", string(tx.Account)),
			zap.Time("date", tx.Date.Time),
			zap.String("amount", tx.Amount.String()),
			zap.String("type", string(tx.Kind)),
			zap.String("description", tx.Description),
		}
		if tx.Category != nil {
			fields = append(fields, zap.String("category", tx.Category.Name.String()))
		}
		logger.Info("transaction", fields...)
	}
	if page.Next != nil {
		logger.Info("more transactions available", zap.String("cursor", string(*page.Next)))
	}
}

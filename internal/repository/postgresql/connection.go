package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/order_reporter/internal/config"
)

const (
	applicationName = "order_reporter"

	// one insert per run
	maxConns       = 2
	maxRetries     = 2
	retryDelay     = time.Second
	connectTimeout = 5 * time.Second
)

// ConnString builds the DSN of the run ledger database.
func ConnString(cfg config.PostgreSQL) string {
	query := url.Values{}
	query.Set("sslmode", "disable")
	query.Set("application_name", applicationName)
	query.Set("connect_timeout", fmt.Sprint(int(connectTimeout.Seconds())))

	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: query.Encode(),
	}).String()
}

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}
	poolCfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := Retry(log, pool.Ping, maxRetries, retryDelay)(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach run ledger at %s: %w", net.JoinHostPort(cfg.Host, cfg.Port), err)
	}

	return pool, nil
}

type PingFunction func(context.Context) error

// Retry calls ping until it succeeds, retries are used up or ctx is done.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			err := ping(ctx)
			if err == nil || attempt > retries {
				return err
			}

			log.DebugContext(ctx, "run ledger unreachable, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", retries),
				slog.Duration("delay", delay),
				slog.String("err", err.Error()))

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
)

// Startup connection retry parameters. The delay doubles after every failed
// ping, so the last attempt happens roughly 15s after the first.
const (
	connectMaxAttempts = 5
	connectBaseDelay   = 1 * time.Second
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool to PostgreSQL and verifies it
// with a bounded exponential-backoff ping loop: up to connectMaxAttempts
// attempts with a doubling delay, each failure logged. Startup aborts with a
// diagnostic error after the last attempt instead of busy-retrying forever.
//
// Errors the classifier marks as non-retryable (e.g. bad credentials,
// unknown database) abort immediately; waiting would not help.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database with bounded exponential backoff
	delay := connectBaseDelay
	for attempt := 1; ; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			break
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && classifier.Classify(err) == NonRetryable {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("database rejected connection with non-retryable error")
			_ = conn.Close()
			return nil, fmt.Errorf("database rejected connection: %w", err)
		}

		if attempt == connectMaxAttempts {
			log.Err(err).Str("func", "NewConnectPostgres").Int("attempts", connectMaxAttempts).Msg("database is unreachable, giving up")
			_ = conn.Close()
			return nil, fmt.Errorf("database is unreachable after %d attempts: %w", connectMaxAttempts, err)
		}

		log.Warn().Err(err).
			Str("func", "NewConnectPostgres").
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("database ping failed, retrying")

		select {
		case <-ctx.Done():
			_ = conn.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/livematch/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbPingTimeout       = 5 * time.Second
	maxTracedStatement  = 512
	binaryResultsOffKey = "disable_prepared_binary_result"
)

// OpenDB opens the traced Postgres pool and checks it is reachable.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(traceStatement),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// postgresDSN disables binary results of prepared statements unless raw
// already sets the flag.
func postgresDSN(raw string, disableBinary bool) string {
	if !disableBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	if query.Get(binaryResultsOffKey) != "" {
		return raw
	}
	query.Set(binaryResultsOffKey, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName reads the database from a URL or a key/value DSN.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// traceStatement collapses whitespace and caps the statement recorded on spans.
func traceStatement(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > maxTracedStatement {
		return query[:maxTracedStatement] + "..."
	}
	return query
}

package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	// Auto-migrate schema
	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	// Businesses Table (tenants)
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS businesses (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(20) NOT NULL DEFAULT 'other',
			api_key VARCHAR(64) UNIQUE NOT NULL,
			notify_chat_id BIGINT NOT NULL DEFAULT 0,
			admin_id INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create businesses table: %w", err)
	}

	// Users Table (dashboard accounts)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			email VARCHAR(100) NOT NULL DEFAULT '',
			role VARCHAR(20) DEFAULT 'admin',
			business_id INTEGER REFERENCES businesses(id) ON DELETE SET NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	// Custom Responses Table
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS responses (
			id SERIAL PRIMARY KEY,
			business_id INTEGER NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			intent VARCHAR(50) NOT NULL,
			pattern TEXT NOT NULL,
			response TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create responses table: %w", err)
	}

	// Chat Sessions Table
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_sessions (
			id SERIAL PRIMARY KEY,
			session_id VARCHAR(64) NOT NULL,
			business_id INTEGER NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			visitor_ip VARCHAR(45),
			user_agent TEXT,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			ended_at TIMESTAMP NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create chat_sessions table: %w", err)
	}

	// At most one OPEN session per (token, business); concurrent creates
	// for the same visitor serialize on this index.
	_, err = p.Pool.Exec(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS chat_sessions_open_idx
		ON chat_sessions (session_id, business_id) WHERE ended_at IS NULL;
	`)
	if err != nil {
		return fmt.Errorf("create open session index: %w", err)
	}

	// Messages Table (append-only transcript)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			session_id INTEGER NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
			message TEXT NOT NULL,
			is_bot BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS messages_session_id_idx ON messages (session_id);
	`)
	if err != nil {
		return fmt.Errorf("create messages index: %w", err)
	}

	// Widget Settings Table (per-business appearance knobs)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS widget_settings (
			business_id INTEGER NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			key VARCHAR(64) NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (business_id, key)
		);
	`)
	if err != nil {
		return fmt.Errorf("create widget_settings table: %w", err)
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}

package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	ConnStr string
}

type ConnectionPool struct {
	conn *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	dbpool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return &ConnectionPool{conn: dbpool}, nil
}

func (p *ConnectionPool) GetConn() *pgxpool.Pool {
	return p.conn
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}

func (p *ConnectionPool) Ping(ctx context.Context) error {
	c, err := p.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	return c.Ping(ctx)
}

// DualPools holds the two long-lived database handles, constructed once
// at process start and injected by reference everywhere.
//
// Public skips session restoration and serves the read adapters (the
// latency-sensitive path: every page load fans out over it). Session
// authenticates and serves ingestion writes. Keep them as two named
// handles; collapsing them re-adds session setup cost to every public
// read.
type DualPools struct {
	Public  *ConnectionPool
	Session *ConnectionPool
}

type DualPoolConfig struct {
	PublicConnStr  string
	SessionConnStr string
}

func NewDualPools(ctx context.Context, cfg DualPoolConfig) (*DualPools, error) {
	public, err := NewConnectionPool(ctx, PoolConfig{ConnStr: cfg.PublicConnStr})
	if err != nil {
		return nil, fmt.Errorf("failed to create public pool: %w", err)
	}

	session, err := NewConnectionPool(ctx, PoolConfig{ConnStr: cfg.SessionConnStr})
	if err != nil {
		public.Close()
		return nil, fmt.Errorf("failed to create session pool: %w", err)
	}

	return &DualPools{Public: public, Session: session}, nil
}

func (d *DualPools) Close() {
	d.Public.Close()
	d.Session.Close()
}

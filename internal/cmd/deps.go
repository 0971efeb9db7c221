package cmd

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/bjaus/textable/internal/source"
)

// queryConn is the part of *pgx.Conn the sql command uses.
type queryConn interface {
	source.Querier
	Close(ctx context.Context) error
}

var (
	envGet  = os.Getenv
	connect = func(ctx context.Context, dsn string) (queryConn, error) {
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
)

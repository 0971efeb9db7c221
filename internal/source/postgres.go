package source

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bjaus/textable"
)

// Querier runs a query. *pgx.Conn and *pgxpool.Pool satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// FromQuery runs sql and reads the result set into a table. Column labels
// are the result field names; rows keep the order the server returns.
func FromQuery(ctx context.Context, db Querier, sql string, args ...any) (*Table, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var data [][]textable.Value
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(data), err)
		}
		row := make([]textable.Value, len(vals))
		for i, v := range vals {
			row[i] = pgValue(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return &Table{Frame: &textable.Frame{Columns: columns, Rows: data}}, nil
}

// pgValue converts a value decoded by pgx.
func pgValue(v any) textable.Value {
	switch x := v.(type) {
	case nil:
		return textable.Missing()
	case int16:
		return textable.Int(int64(x))
	case int32:
		return textable.Int(int64(x))
	case int64:
		return textable.Int(x)
	case float32:
		return textable.Float(float64(x))
	case float64:
		return textable.Float(x)
	case bool:
		return textable.Bool(x)
	case string:
		return textable.String(x)
	case []byte:
		return textable.String(string(x))
	case [16]byte:
		return textable.String(uuid.UUID(x).String())
	case time.Time:
		return textable.String(formatTime(x))
	case pgtype.Numeric:
		return numericValue(x)
	default:
		return toValue(v)
	}
}

// numericValue keeps whole numerics as integers when they fit.
func numericValue(n pgtype.Numeric) textable.Value {
	if !n.Valid || n.NaN {
		return textable.Missing()
	}
	if n.InfinityModifier == pgtype.Finite && n.Exp >= 0 && n.Int != nil {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil)
		if i := new(big.Int).Mul(n.Int, scale); i.IsInt64() {
			return textable.Int(i.Int64())
		}
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return textable.Missing()
	}
	return textable.Float(f.Float64)
}

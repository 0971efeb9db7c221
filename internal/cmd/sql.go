package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
	"github.com/bjaus/textable/internal/logging"
	"github.com/bjaus/textable/internal/source"
)

type sqlOptions struct {
	dsn       string
	query     string
	queryFile string
	out       string
	table     tableFlags
}

func newSQLCmd(a *app) *cobra.Command {
	opts := &sqlOptions{}
	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Render the result of a PostgreSQL query",
		Long: `Run a query against PostgreSQL and render the result set. Column labels
are the result field names; rows keep the order the server returns.

The connection string comes from --dsn, then TEXTABLE_DSN, then the dsn
setting of the config file.`,
		Example: `  textable sql --dsn postgres://localhost/bench -q 'select * from runs' -c Runs
  textable sql --query-file report.sql --no-index -o report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := opts.resolveDSN(cmd, a.cfg.DSN)
			if dsn == "" {
				return fmt.Errorf("%w: no connection string: set --dsn, TEXTABLE_DSN or dsn in the config file", textable.ErrConfig)
			}
			query, err := opts.resolveQuery(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)
			conn, err := connect(ctx, dsn)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer func() {
				if err := conn.Close(ctx); err != nil {
					logger.Warn("closing connection", "error", err)
				}
			}()

			tbl, err := source.FromQuery(ctx, conn, query)
			if err != nil {
				return err
			}
			cfg, err := opts.table.apply(cmd, a.cfg.Table, "")
			if err != nil {
				return err
			}
			lines, err := textable.Build(tbl, cfg)
			if err != nil {
				return err
			}
			rows, cols := tbl.Shape()
			logger.Debug("rendered query", "rows", rows, "cols", cols)
			return emit(cmd, lines, opts.out)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.dsn, "dsn", "", "PostgreSQL connection string")
	fs.StringVarP(&opts.query, "query", "q", "", "SQL query")
	fs.StringVar(&opts.queryFile, "query-file", "", `file holding the SQL query ("-" for stdin)`)
	fs.StringVarP(&opts.out, "out", "o", "", `output file, ".tex" appended if missing (default: stdout)`)
	opts.table.register(fs)
	cmd.MarkFlagsMutuallyExclusive("query", "query-file")
	return cmd
}

// resolveDSN: --dsn > TEXTABLE_DSN > config.
func (o *sqlOptions) resolveDSN(cmd *cobra.Command, fromConfig string) string {
	if flagChanged(cmd, "dsn") {
		return strings.TrimSpace(o.dsn)
	}
	if v := strings.TrimSpace(envGet("TEXTABLE_DSN")); v != "" {
		return v
	}
	return strings.TrimSpace(fromConfig)
}

func (o *sqlOptions) resolveQuery(cmd *cobra.Command) (string, error) {
	if o.queryFile != "" {
		return readInputSource(o.queryFile, cmd.InOrStdin())
	}
	if strings.TrimSpace(o.query) == "" {
		return "", fmt.Errorf("a query is required: use --query or --query-file")
	}
	return o.query, nil
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the command tree with a config path that does not exist, so
// the defaults apply.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runWithConfig(t, filepath.Join(t.TempDir(), "config.yaml"), stdin, args...)
}

func runWithConfig(t *testing.T, cfgPath, stdin string, args ...string) result {
	t.Helper()
	root := NewRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errBuf.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// stubEnv replaces envGet for the duration of the test.
func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := envGet
	envGet = func(key string) string { return env[key] }
	t.Cleanup(func() { envGet = prev })
}

// --- Database fakes ---

type fakeRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	pos    int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakeRows) Scan(...any) error                            { return errors.New("scan not supported") }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

type fakeConn struct {
	rows   *fakeRows
	gotSQL string
	closed bool
}

func (c *fakeConn) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	c.gotSQL = sql
	return c.rows, nil
}

func (c *fakeConn) Close(context.Context) error {
	c.closed = true
	return nil
}

// stubConnect replaces connect with one returning conn and recording the
// connection string.
func stubConnect(t *testing.T, conn *fakeConn) *string {
	t.Helper()
	var gotDSN string
	prev := connect
	connect = func(_ context.Context, dsn string) (queryConn, error) {
		gotDSN = dsn
		return conn, nil
	}
	t.Cleanup(func() { connect = prev })
	return &gotDSN
}

func runsConn() *fakeConn {
	return &fakeConn{rows: &fakeRows{
		fields: []pgconn.FieldDescription{{Name: "name"}, {Name: "score"}},
		data:   [][]any{{"a", float64(0.5)}, {"b", int64(2)}},
	}}
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/textable/internal/config"
	"github.com/bjaus/textable/internal/logging"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by the subcommands once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// NewRootCmd returns the textable command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "textable",
		Short: "Render tables as booktabs LaTeX",
		Long: `textable renders tabular data as a LaTeX table fragment using the
booktabs rules, with optional threeparttable notes and sideways rotation.

Input can be CSV, TSV, JSON or YAML, or the result of a PostgreSQL query.

Environment Variables:
  TEXTABLE_CONFIG  Config file path (default ~/.config/textable/config.yaml)
  TEXTABLE_DSN     PostgreSQL connection string for "textable sql"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newBuildCmd(a),
		newSQLCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// setup loads .env, the config file and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	a.configPath = path

	// config init must work even when the existing file is broken.
	if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		a.cfg = cfg
	}

	level, format := a.cfg.Log.Level, a.cfg.Log.Format
	if flagChanged(cmd, "log-level") {
		level = a.logLevel
	}
	if flagChanged(cmd, "log-format") {
		format = a.logFormat
	}
	logger := logging.Setup(cmd.ErrOrStderr(), level, format)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("loaded config", "path", path)
	return nil
}

// resolveConfigPath: --config > TEXTABLE_CONFIG > default location.
func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	if p := envGet("TEXTABLE_CONFIG"); p != "" {
		return p, nil
	}
	return config.DefaultConfigPath()
}

// flagChanged reports whether the flag was set on the command line, on the
// command itself or inherited from a parent.
func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed(name) {
		return true
	}
	return cmd.InheritedFlags().Changed(name)
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
	"github.com/bjaus/textable/internal/logging"
)

// emit writes lines to stdout, or exports them when out names a file.
func emit(cmd *cobra.Command, lines textable.Lines, out string) error {
	logger := logging.FromContext(cmd.Context())
	if out == "" || out == "-" {
		_, err := lines.WriteTo(cmd.OutOrStdout())
		return err
	}
	path, err := lines.Export(out)
	if err != nil {
		return err
	}
	logger.Info("wrote table", "path", path, "lines", len(lines))
	return nil
}

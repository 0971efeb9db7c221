package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// openInput opens a file, or stdin when source is "-". Interactive stdin is
// refused so the command does not hang waiting for a table.
func openInput(source string, stdin io.Reader) (io.ReadCloser, error) {
	if source == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		if isTerminal(stdin) {
			return nil, fmt.Errorf("no input: pass a file or pipe a table on stdin")
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return f, nil
}

// readInputSource reads content from a file path or stdin when source is "-".
func readInputSource(source string, stdin io.Reader) (string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", fmt.Errorf("empty input source")
	}
	r, err := openInput(trimmed, stdin)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// inputFormat picks the reader for source: the explicit format if given,
// else the file extension, else CSV.
func inputFormat(explicit, source string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(explicit))
	if format == "" {
		switch strings.ToLower(filepath.Ext(source)) {
		case ".tsv", ".tab":
			format = "tsv"
		case ".json":
			format = "json"
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "csv"
		}
	}
	switch format {
	case "csv", "tsv", "json", "yaml":
		return format, nil
	case "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unknown input format %q (want csv, tsv, json or yaml)", explicit)
	}
}

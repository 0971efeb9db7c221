package cmd

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
	"github.com/bjaus/textable/internal/logging"
	"github.com/bjaus/textable/internal/source"
)

type buildOptions struct {
	format     string
	delimiter  string
	headerRows int
	indexCol   bool
	query      string
	out        string
	table      tableFlags
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build [file|-]",
		Short: "Render a CSV, TSV, JSON or YAML table",
		Long: `Render a table read from a file, or from stdin when the file is "-" or
omitted.

CSV and TSV input may carry several header lines (--header-rows) for
hierarchical columns, and the first column may hold the row labels
(--index-col). JSON and YAML input is either an object with "columns",
"data" and optionally "index" and "index_names", or an array of records.
A jq expression (--query) can select or reshape the document first.`,
		Example: `  textable build results.csv -c "Results" -l tab:results -o results
  textable build --header-rows 2 --index-col scores.csv
  curl -s $API | textable build --format json --query '.runs' -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			tbl, err := opts.read(cmd, input)
			if err != nil {
				return err
			}
			cfg, err := opts.table.apply(cmd, a.cfg.Table, tbl.IndexName)
			if err != nil {
				return err
			}
			lines, err := textable.Build(tbl, cfg)
			if err != nil {
				return err
			}
			rows, cols := tbl.Shape()
			logging.FromContext(cmd.Context()).Debug("rendered table", "input", input, "rows", rows, "cols", cols)
			return emit(cmd, lines, opts.out)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.format, "format", "f", "", "input format: csv, tsv, json, yaml (default: by extension, else csv)")
	fs.StringVar(&opts.delimiter, "delimiter", "", "CSV field delimiter (default: comma, tab for tsv)")
	fs.IntVar(&opts.headerRows, "header-rows", 1, "number of CSV header lines")
	fs.BoolVar(&opts.indexCol, "index-col", false, "use the first CSV column as row labels")
	fs.StringVarP(&opts.query, "query", "q", "", "jq expression applied to JSON or YAML input")
	fs.StringVarP(&opts.out, "out", "o", "", `output file, ".tex" appended if missing (default: stdout)`)
	opts.table.register(fs)
	return cmd
}

func (o *buildOptions) read(cmd *cobra.Command, input string) (*source.Table, error) {
	format, err := inputFormat(o.format, input)
	if err != nil {
		return nil, err
	}
	if o.query != "" && (format == "csv" || format == "tsv") {
		return nil, fmt.Errorf("--query applies to json and yaml input, not %s", format)
	}

	r, err := openInput(input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch format {
	case "json", "yaml":
		return o.readDocument(r, format)
	default:
		delim, err := o.delimiterRune(format)
		if err != nil {
			return nil, err
		}
		return source.ReadCSV(r, source.CSVOptions{
			Delimiter:  delim,
			HeaderRows: o.headerRows,
			IndexCol:   o.indexCol,
		})
	}
}

func (o *buildOptions) readDocument(r io.Reader, format string) (*source.Table, error) {
	decode := source.DecodeJSON
	if format == "yaml" {
		decode = source.DecodeYAML
	}
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	if o.query != "" {
		if doc, err = source.Query(doc, o.query); err != nil {
			return nil, err
		}
	}
	return source.FromDocument(doc)
}

func (o *buildOptions) delimiterRune(format string) (rune, error) {
	if o.delimiter == "" {
		if format == "tsv" {
			return '\t', nil
		}
		return 0, nil
	}
	d := o.delimiter
	if d == `\t` {
		d = "\t"
	}
	r, size := utf8.DecodeRuneInString(d)
	if size != len(d) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", o.delimiter)
	}
	return r, nil
}

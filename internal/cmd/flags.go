package cmd

import (
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/textable"
)

// tableFlags are the rendering flags shared by build and sql. A flag only
// overrides the config file when it was set.
type tableFlags struct {
	caption     string
	label       string
	columns     []string
	noIndex     bool
	indexTitle  string
	precision   int
	noRound     bool
	threePart   bool
	notes       []string
	sideways    bool
	missingFill string
	align       string
	escape      bool
	alignSource bool
}

func (f *tableFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.caption, "caption", "c", "", "table caption")
	fs.StringVarP(&f.label, "label", "l", "", "table label")
	fs.StringSliceVar(&f.columns, "columns", nil, "override column labels (comma separated)")
	fs.BoolVar(&f.noIndex, "no-index", false, "omit the index column")
	fs.StringVar(&f.indexTitle, "index-title", "", "heading of the index column")
	fs.IntVarP(&f.precision, "precision", "p", textable.DefaultPrecision, "decimal digits floats are rounded to")
	fs.BoolVar(&f.noRound, "no-round", false, "leave numbers unrounded")
	fs.BoolVar(&f.threePart, "threeparttable", false, "wrap in a threeparttable with notes")
	fs.StringArrayVar(&f.notes, "note", nil, "table note (repeatable, implies --threeparttable)")
	fs.BoolVar(&f.sideways, "sideways", false, "rotate the table with sidewaystable")
	fs.StringVar(&f.missingFill, "missing-fill", "", "text for missing cells")
	fs.StringVar(&f.align, "align", "", `column alignments, e.g. "lrc"`)
	fs.BoolVar(&f.escape, "escape", false, "escape LaTeX special characters")
	fs.BoolVar(&f.alignSource, "align-source", false, "pad cells so separators line up")
}

// apply overlays the flags that were set on base. indexName heads the
// index column when neither the flags nor base name one.
func (f *tableFlags) apply(cmd *cobra.Command, base textable.Config, indexName string) (textable.Config, error) {
	cfg := base
	if flagChanged(cmd, "caption") {
		cfg.Caption = f.caption
	}
	if flagChanged(cmd, "label") {
		cfg.Label = f.label
	}
	if flagChanged(cmd, "columns") {
		cfg.Columns = slices.Clone(f.columns)
	}
	if flagChanged(cmd, "no-index") {
		cfg.IncludeIndex = !f.noIndex
	}
	if flagChanged(cmd, "index-title") {
		cfg.IndexTitle = f.indexTitle
	} else if cfg.IndexTitle == "" {
		cfg.IndexTitle = indexName
	}
	switch {
	case f.noRound:
		cfg.Precision = nil
	case flagChanged(cmd, "precision"):
		cfg.Precision = textable.Digits(f.precision)
	}
	if flagChanged(cmd, "threeparttable") {
		cfg.ThreePartTable = f.threePart
	}
	if flagChanged(cmd, "note") {
		cfg.ThreePartTable = true
		cfg.Notes = slices.Clone(f.notes)
	}
	if flagChanged(cmd, "sideways") {
		cfg.Sideways = f.sideways
	}
	if flagChanged(cmd, "missing-fill") {
		cfg.MissingFill = f.missingFill
	}
	if flagChanged(cmd, "align") {
		aligns, err := textable.ParseAlignments(f.align)
		if err != nil {
			return textable.Config{}, err
		}
		cfg.Alignments = aligns
	}
	if flagChanged(cmd, "escape") {
		cfg.Escape = f.escape
	}
	if flagChanged(cmd, "align-source") {
		cfg.AlignSource = f.alignSource
	}
	if err := cfg.Validate(); err != nil {
		return textable.Config{}, err
	}
	return cfg, nil
}

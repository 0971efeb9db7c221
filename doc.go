// Package textable renders tabular data as a LaTeX table fragment.
//
// The central entry point is [Build], which takes a [Data] value and a
// [Config] and returns the fragment as [Lines], one markup line per element.
// [Write] and [Marshal] build and serialize in one step; [Export] writes the
// lines to a .tex file.
//
// # Interface Design
//
// Like the rest of the data it is built from, a table is described through
// a minimal interface plus optional ones discovered at build time:
//
//   - [Data] → shape and cells (required)
//   - [Headed] → flat column labels
//   - [MultiHeaded] → hierarchical column labels, one tuple per column
//   - [Indexed] → row labels
//
// [Frame] implements all four for data held in memory.
//
// # Output
//
// A build with the default config produces:
//
//	\begin{table}[H]
//	\centering
//	\caption{Results} \label{tab:results}
//	\begin{tabular}{lrr}
//	\toprule
//	&{A} & {B} \\
//	\midrule
//	\textbf{0} & 1.0 & 2 \\
//	\bottomrule
//	\end{tabular}
//	\end{table}
//
// [Config.Sideways] swaps the table float for a scaled sidewaystable and
// [Config.ThreePartTable] wraps the tabular in a threeparttable with a
// tablenotes block. Both may be combined; the threeparttable then sits
// inside the scale box.
//
// # Hierarchical Columns
//
// Columns labelled by tuples get one header line per level. Each distinct
// label becomes a \multicolumn spanning its columns, grouped within its
// parent label so spans never cross a parent boundary, and every level but
// the innermost is underlined with one \cmidrule per span.
//
// # Values
//
// Cells are [Value]s. Floats are rounded to [Config.Precision] digits, ties
// to even on the exact binary value, and printed in their shortest form.
// Integers and text are printed as is. Missing cells, including NaN, are
// replaced by [Config.MissingFill].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrConfig]: invalid settings, such as a negative precision or a
//     column label override of the wrong length
//   - [ErrStructure]: data whose labels do not match its shape
//   - [ErrIO]: [Export] could not write the file
//   - [ErrMissingInterface]: nil data
package textable

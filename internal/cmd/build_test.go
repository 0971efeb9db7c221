package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textable"
)

func TestBuildCSVFromStdin(t *testing.T) {
	t.Parallel()
	res := run(t, "A,B\n1,2.5\n3,\n", "build", "-c", "Results", "-l", "tab:r")
	require.NoError(t, res.err)

	want := strings.Join([]string{
		`\begin{table}[H]`,
		`\centering`,
		`\caption{Results} \label{tab:r}`,
		`\begin{tabular}{lrr}`,
		`\toprule`,
		`&{A} & {B} \\`,
		`\midrule`,
		`\textbf{0} & 1 & 2.5 \\`,
		`\textbf{1} & 3 &  \\`,
		`\bottomrule`,
		`\end{tabular}`,
		`\end{table}`,
	}, "\n") + "\n"
	assert.Equal(t, want, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestBuildJSONToFile(t *testing.T) {
	t.Parallel()
	in := writeFile(t, "scores.json", `{
		"columns": [["X", "a"], ["X", "b"], ["Y", "a"]],
		"index": ["r1", "r2"],
		"index_names": ["Run"],
		"data": [[1, 2.25, 3], [4, 5, 6.5]]
	}`)
	out := filepath.Join(t.TempDir(), "scores")

	res := run(t, "", "build", in, "-o", out)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out + textable.Extension)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Contains(t, lines, `{Run} &\multicolumn{2}{c}{\textbf{X}}&\multicolumn{1}{c}{\textbf{Y}}\\`)
	assert.Contains(t, lines, `\cmidrule(lr){2-3}\cmidrule(lr){4-4}`)
	assert.Contains(t, lines, `&\multicolumn{1}{c}{a}&\multicolumn{1}{c}{b}&\multicolumn{1}{c}{a}\\`)
	assert.Contains(t, lines, `\textbf{r1} & 1 & 2.25 & 3 \\`)
	assert.Contains(t, lines, `\textbf{r2} & 4 & 5 & 6.5 \\`)
}

func TestBuildYAMLQuery(t *testing.T) {
	t.Parallel()
	in := "runs:\n  - {name: a, score: 0.12345}\n  - {name: b, score: 2}\n"
	res := run(t, in, "build", "--format", "yaml", "--query", ".runs", "--no-index", "-p", "2")
	require.NoError(t, res.err)

	lines := strings.Split(res.stdout, "\n")
	assert.Contains(t, lines, `\begin{tabular}{rr}`)
	assert.Contains(t, lines, `{name} & {score} \\`)
	assert.Contains(t, lines, `a & 0.12 \\`)
	assert.Contains(t, lines, `b & 2 \\`)
}

func TestBuildCSVVariants(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  []string
	}{
		"tsv": {
			stdin: "A\tB\n1\t2\n",
			args:  []string{"--format", "tsv"},
			want:  []string{`&{A} & {B} \\`, `\textbf{0} & 1 & 2 \\`},
		},
		"custom delimiter": {
			stdin: "A;B\n1;2\n",
			args:  []string{"--delimiter", ";"},
			want:  []string{`&{A} & {B} \\`},
		},
		"multi header with index column": {
			stdin: "id,X,\n,a,b\nr1,1,2\n",
			args:  []string{"--header-rows", "2", "--index-col"},
			want: []string{
				`{id} &\multicolumn{2}{c}{\textbf{X}}\\`,
				`\cmidrule(lr){2-3}`,
				`&\multicolumn{1}{c}{a}&\multicolumn{1}{c}{b}\\`,
				`\textbf{r1} & 1 & 2 \\`,
			},
		},
		"index title flag wins": {
			stdin: "id,A\nr1,1\n",
			args:  []string{"--index-col", "--index-title", "Run"},
			want:  []string{`{Run} &{A} \\`},
		},
		"no rounding": {
			stdin: "A\n0.123456\n",
			args:  []string{"--no-round"},
			want:  []string{`\textbf{0} & 0.123456 \\`},
		},
		"missing fill": {
			stdin: "A,B\n1,NA\n",
			args:  []string{"--missing-fill=--"},
			want:  []string{`\textbf{0} & 1 & -- \\`},
		},
		"escape": {
			stdin: "A_1\n50%\n",
			args:  []string{"--escape"},
			want:  []string{`&{A\_1} \\`, `\textbf{0} & 50\% \\`},
		},
		"wrappers": {
			stdin: "A,B\n1,2\n",
			args:  []string{"--columns", "x,y", "--align", "lc", "--sideways", "--note", "Source: lab"},
			want: []string{
				`\begin{sidewaystable}`,
				`\begin{threeparttable}`,
				`\begin{tabular}{llc}`,
				`&{x} & {y} \\`,
				`\item Source: lab`,
				`\end{sidewaystable}`,
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, tt.stdin, append([]string{"build"}, tt.args...)...)
			require.NoError(t, res.err)
			lines := strings.Split(res.stdout, "\n")
			for _, want := range tt.want {
				assert.Contains(t, lines, want)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin   string
		args    []string
		wantErr error
	}{
		"unknown format":     {stdin: "A\n1\n", args: []string{"--format", "xml"}},
		"query on csv":       {stdin: "A\n1\n", args: []string{"--query", "."}},
		"bad delimiter":      {stdin: "A\n1\n", args: []string{"--delimiter", "ab"}},
		"missing file":       {args: []string{filepath.Join("no", "such", "file.csv")}},
		"bad alignment":      {stdin: "A\n1\n", args: []string{"--align", "x"}, wantErr: textable.ErrConfig},
		"override length":    {stdin: "A,B\n1,2\n", args: []string{"--columns", "a"}, wantErr: textable.ErrConfig},
		"negative precision": {stdin: "A\n1\n", args: []string{"--precision=-1"}, wantErr: textable.ErrConfig},
		"ragged csv":         {stdin: "A,B\n1\n"},
		"bad document":       {stdin: `{"data": []}`, args: []string{"--format", "json"}, wantErr: textable.ErrStructure},
		"too many args":      {args: []string{"a.csv", "b.csv"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, tt.stdin, append([]string{"build"}, tt.args...)...)
			require.Error(t, res.err)
			if tt.wantErr != nil {
				require.ErrorIs(t, res.err, tt.wantErr)
			}
			assert.Empty(t, res.stdout)
		})
	}
}

func TestBuildUsesConfigFile(t *testing.T) {
	t.Parallel()
	cfgPath := writeFile(t, "config.yaml", "table:\n  index: false\n  precision: 1\n  caption: From config\n")

	res := runWithConfig(t, cfgPath, "A\n1.25\n", "build")
	require.NoError(t, res.err)
	lines := strings.Split(res.stdout, "\n")
	assert.Contains(t, lines, `\caption{From config} \label{}`)
	assert.Contains(t, lines, `1.2 \\`)

	res = runWithConfig(t, cfgPath, "A\n1.25\n", "build", "-p", "2", "-c", "From flag")
	require.NoError(t, res.err)
	lines = strings.Split(res.stdout, "\n")
	assert.Contains(t, lines, `\caption{From flag} \label{}`)
	assert.Contains(t, lines, `1.25 \\`)
}

func TestBuildLogging(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "t.tex")
	res := run(t, "A\n1\n", "--log-level", "debug", "--log-format", "json", "build", "-o", out)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"rendered table"`)
	assert.Contains(t, res.stderr, `"msg":"wrote table"`)
	assert.Contains(t, res.stderr, out)
	assert.FileExists(t, out)
}

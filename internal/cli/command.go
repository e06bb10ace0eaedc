package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gestaltdiff/gestaltdiff/htmldiff"
	"github.com/gestaltdiff/gestaltdiff/internal/tracelog"
	"github.com/gestaltdiff/gestaltdiff/textdiff"
	"github.com/spf13/cobra"
)

// diffOptions holds the root command's flag values.
type diffOptions struct {
	unified bool
	context bool
	ndiff   bool
	html    bool
	lines   int
	wrap    int
	tabSize int
	when    string // --color: auto, always, never
}

func newRootCommand(out io.Writer) (*cobra.Command, *bool) {
	var o diffOptions
	ranRunE := new(bool)

	cmd := &cobra.Command{
		Use:   "gestaltdiff [flags] FROMFILE TOFILE",
		Short: "Compare two text files and print a human-friendly diff",
		Long: `gestaltdiff compares two text files line by line, pairing up similar lines
the way a person reading the files would, and prints the result as a
unified diff (default), a context diff, an ndiff-style delta, or a
side-by-side HTML page.`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := colorEnabled(o.when, out)
			if err != nil {
				// A bad flag value is a usage problem, not a diff failure.
				return err
			}
			*ranRunE = true
			return o.run(out, args[0], args[1], enabled)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.unified, "unified", "u", false, "output a unified diff (the default)")
	f.BoolVarP(&o.context, "context", "c", false, "output a context diff (with --html: collapse unchanged runs)")
	f.BoolVarP(&o.ndiff, "ndiff", "n", false, "output an ndiff-style line delta")
	f.BoolVarP(&o.html, "html", "m", false, "output a side-by-side HTML page")
	f.IntVarP(&o.lines, "lines", "l", 3, "context lines shown around each change")
	f.IntVar(&o.wrap, "wrap", 0, "wrap HTML lines at N display cells (0 disables)")
	f.IntVar(&o.tabSize, "tabsize", 8, "tab stop width in HTML output")
	f.StringVar(&o.when, "color", "auto", "color text output: auto, always, or never")

	// --context doubles as the collapse switch for --html, so that one pair
	// stays legal.
	cmd.MarkFlagsMutuallyExclusive("unified", "context", "ndiff")
	cmd.MarkFlagsMutuallyExclusive("unified", "html")
	cmd.MarkFlagsMutuallyExclusive("ndiff", "html")

	return cmd, ranRunE
}

func (o *diffOptions) run(out io.Writer, fromPath, toPath string, colorOn bool) error {
	start := time.Now()

	a, aDate, err := readLines(fromPath)
	if err != nil {
		return err
	}
	b, bDate, err := readLines(toPath)
	if err != nil {
		return err
	}

	p := newPainter(colorOn)
	mode := "unified"
	switch {
	case o.ndiff:
		mode = "ndiff"
		delta := strings.Join(textdiff.FormatLines(textdiff.Ndiff(a, b)), "")
		err = writeColorized(out, delta, p.ndiffLine)
	case o.html:
		mode = "html"
		h := htmldiff.New()
		h.TabSize = o.tabSize
		h.WrapColumn = o.wrap
		_, err = io.WriteString(out, h.MakeFile(a, b, fromPath, toPath, o.context, o.lines, ""))
	case o.context:
		mode = "context"
		var s string
		s, err = textdiff.ContextDiffString(textdiff.ContextDiff{
			A: a, B: b,
			FromFile: fromPath, FromDate: aDate,
			ToFile: toPath, ToDate: bDate,
			Context: o.lines,
		})
		if err == nil {
			err = writeColorized(out, s, p.contextLine)
		}
	default:
		var s string
		s, err = textdiff.UnifiedDiffString(textdiff.UnifiedDiff{
			A: a, B: b,
			FromFile: fromPath, FromDate: aDate,
			ToFile: toPath, ToDate: bDate,
			Context: o.lines,
		})
		if err == nil {
			err = writeColorized(out, s, p.unifiedLine)
		}
	}
	if err != nil {
		return err
	}

	tracelog.Log("%s diff %s %s (%d vs %d lines) in %s", mode, fromPath, toPath, len(a), len(b), time.Since(start))
	return nil
}

// readLines loads path as diff input lines, plus its mtime for the header
// date. An empty file yields no lines rather than one empty line.
func readLines(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	date := info.ModTime().Format(time.RFC3339)
	if len(data) == 0 {
		return nil, date, nil
	}
	return textdiff.SplitLines(string(data)), date, nil
}

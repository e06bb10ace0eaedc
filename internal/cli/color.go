package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// painter colors diff lines by their control prefix. Every Color carries its
// own on/off switch, so painting never consults the process-global tty
// detection; tests with injected writers stay deterministic.
type painter struct {
	add *color.Color
	del *color.Color
	chg *color.Color
	ctl *color.Color
}

func newPainter(enabled bool) *painter {
	p := &painter{
		add: color.New(color.FgGreen),
		del: color.New(color.FgRed),
		chg: color.New(color.FgYellow),
		ctl: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.add, p.del, p.chg, p.ctl} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// colorEnabled resolves a --color value against the actual output. "auto"
// colors only when out is a terminal.
func colorEnabled(when string, out io.Writer) (bool, error) {
	switch when {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if f, ok := out.(*os.File); ok {
			return term.IsTerminal(int(f.Fd())), nil
		}
		return false, nil
	}
	return false, fmt.Errorf("invalid --color value %q (must be auto, always, or never)", when)
}

func (p *painter) unifiedLine(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
		return p.ctl
	case strings.HasPrefix(line, "+"):
		return p.add
	case strings.HasPrefix(line, "-"):
		return p.del
	}
	return nil
}

// Body prefixes are two characters ("- "), so the three-dash header checks
// never shadow them.
func (p *painter) contextLine(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "***"), strings.HasPrefix(line, "---"):
		return p.ctl
	case strings.HasPrefix(line, "+ "):
		return p.add
	case strings.HasPrefix(line, "- "):
		return p.del
	case strings.HasPrefix(line, "! "):
		return p.chg
	}
	return nil
}

func (p *painter) ndiffLine(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "+ "):
		return p.add
	case strings.HasPrefix(line, "- "):
		return p.del
	}
	return nil
}

// writeColorized writes text to w line by line, wrapping each line in the
// color classify picks for it. Newlines stay outside the color codes so a
// pager never sees a styled line break.
func writeColorized(w io.Writer, text string, classify func(string) *color.Color) error {
	bw := bufio.NewWriter(w)
	for len(text) > 0 {
		line := text
		hadNL := false
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text, hadNL = text[:i], text[i+1:], true
		} else {
			text = ""
		}
		if c := classify(line); c != nil {
			line = c.Sprint(line)
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if hadNL {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

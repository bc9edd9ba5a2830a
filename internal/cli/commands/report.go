// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvlalg/internal/cli/config"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Field is one named scalar result.
type Field struct {
	Name  string
	Value string
}

// Block is one named matrix result, entries already formatted by the domain.
type Block struct {
	Name   string
	Header []string // optional column titles; column indices otherwise
	Rows   int
	Cols   int
	Cells  [][]string
}

// Report is the rendered outcome of one command.
type Report struct {
	Command string
	Domain  string
	Fields  []Field
	Blocks  []Block
}

func newReport(command, domain string) *Report {
	return &Report{Command: command, Domain: domain}
}

func (r *Report) field(name string, v any) {
	r.Fields = append(r.Fields, Field{Name: name, Value: fmt.Sprint(v)})
}

// addMatrix appends m as a block, formatting entries with m's ring.
func addMatrix[E any](r *Report, name string, m *matrix.Dense[E]) {
	rg := m.Ring()
	cells := make([][]string, m.Rows())
	for i := range cells {
		cells[i] = make([]string, m.Cols())
	}
	m.Do(func(i, j int, v E) bool {
		cells[i][j] = rg.Format(v)
		return true
	})
	r.Blocks = append(r.Blocks, Block{Name: name, Rows: m.Rows(), Cols: m.Cols(), Cells: cells})
}

func (b Block) title() string {
	return fmt.Sprintf("%s (%d×%d)", b.Name, b.Rows, b.Cols)
}

// Render writes r in the given output mode (config.OutputTable or
// config.OutputPlain).
func Render(w io.Writer, r *Report, mode string) error {
	if mode == config.OutputPlain {
		return renderPlain(w, r)
	}

	return renderTable(w, r)
}

func renderTable(w io.Writer, r *Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(r.Command + " over " + r.Domain)
	t.AppendHeader(table.Row{"field", "value"})
	for _, f := range r.Fields {
		t.AppendRow(table.Row{f.Name, f.Value})
	}
	t.Render()

	for _, b := range r.Blocks {
		if b.Cols == 0 || b.Rows == 0 {
			_, _ = fmt.Fprintln(w, b.title())
			continue
		}

		bt := table.NewWriter()
		bt.SetOutputMirror(w)
		bt.SetStyle(table.StyleLight)
		bt.SetTitle(b.title())

		header := table.Row{"#"}
		for j := 0; j < b.Cols; j++ {
			if b.Header != nil {
				header = append(header, b.Header[j])
			} else {
				header = append(header, j)
			}
		}
		bt.AppendHeader(header)

		for i, cells := range b.Cells {
			row := make(table.Row, 0, b.Cols+1)
			row = append(row, i)
			for _, c := range cells {
				row = append(row, c)
			}
			bt.AppendRow(row)
		}
		bt.Render()
	}

	return nil
}

func renderPlain(w io.Writer, r *Report) error {
	var sb strings.Builder
	sb.WriteString("domain: " + r.Domain + "\n")
	for _, f := range r.Fields {
		sb.WriteString(f.Name + ": " + f.Value + "\n")
	}
	for _, b := range r.Blocks {
		sb.WriteString(b.title() + ":\n")
		for _, cells := range b.Cells {
			sb.WriteString("[" + strings.Join(cells, ", ") + "]\n")
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// formatInts renders an index list as "[0 2 3]".
func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

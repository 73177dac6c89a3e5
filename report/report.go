// SPDX-License-Identifier: MIT

// Package report renders the label tally and the sort timing matrix as
// console tables. Colour is applied only when the output is a terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/pwbench/classify"
	"github.com/katalvlaran/pwbench/container"
	"github.com/katalvlaran/pwbench/pipeline"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = cellStyle.Foreground(colorMuted)
)

// Styled reports whether f is a terminal that should receive colour.
func Styled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer writes report tables.
type Renderer struct {
	styled bool
}

// New returns a Renderer. With styled false the tables use ASCII borders and
// no colour, which keeps redirected output plain.
func New(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Tally writes one row per label: count and, when scored, the mean zxcvbn
// score. Labels are listed weakest first.
func (r *Renderer) Tally(w io.Writer, tally *container.HashMap[string, pipeline.Tally]) error {
	keys := tally.Keys().ToSlice()
	slices.SortFunc(keys, func(a, b string) int { return labelRank(a) - labelRank(b) })

	rows := make([][]string, 0, len(keys))
	total := 0
	for _, k := range keys {
		t, _ := tally.Get(k)
		total += t.Count
		score := "-"
		if avg, ok := t.AverageScore(); ok {
			score = strconv.FormatFloat(avg, 'f', 2, 64)
		}
		rows = append(rows, []string{k, strconv.Itoa(t.Count), score})
	}
	rows = append(rows, []string{"total", strconv.Itoa(total), ""})

	return r.write(w, []string{"class", "count", "avg zxcvbn"}, rows)
}

// Timings writes one row per (criterion, algorithm) pair and one column per
// scenario, in the order the runs were performed.
func (r *Renderer) Timings(w io.Writer, results []pipeline.Result) error {
	type pair struct{ crit, alg string }

	var (
		order     []pair
		scenarios []pipeline.Scenario
		cells     = map[pair]map[pipeline.Scenario]time.Duration{}
	)
	for _, res := range results {
		p := pair{string(res.Criterion), string(res.Algorithm)}
		if _, ok := cells[p]; !ok {
			cells[p] = map[pipeline.Scenario]time.Duration{}
			order = append(order, p)
		}
		cells[p][res.Scenario] = res.Duration
		if !slices.Contains(scenarios, res.Scenario) {
			scenarios = append(scenarios, res.Scenario)
		}
	}

	header := []string{"criterion", "algorithm"}
	for _, sc := range scenarios {
		header = append(header, string(sc))
	}
	rows := make([][]string, 0, len(order))
	for _, p := range order {
		row := []string{p.crit, p.alg}
		for _, sc := range scenarios {
			d, ok := cells[p][sc]
			if !ok {
				row = append(row, "-")

				continue
			}
			row = append(row, d.Round(time.Microsecond).String())
		}
		rows = append(rows, row)
	}

	return r.write(w, header, rows)
}

func (r *Renderer) write(w io.Writer, header []string, rows [][]string) error {
	t := table.New().Headers(header...).Rows(rows...)
	if r.styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 0:
					return cellStyle
				default:
					return mutedStyle
				}
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(int, int) lipgloss.Style { return cellStyle })
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// labelRank orders labels weakest first, processing errors and unknown
// labels last.
func labelRank(s string) int {
	order := append(classify.Labels(), classify.ProcessingError)
	if i := slices.Index(order, classify.Label(s)); i >= 0 {
		return i
	}

	return len(order)
}

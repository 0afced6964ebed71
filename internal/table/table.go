// Package table renders rosters as a fixed-width bordered text table.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/flarebyte/workers/internal/roster"
)

// EmptyNotice is printed instead of a table when there is nothing to show.
const EmptyNotice = "Список работников пуст."

type align int

const (
	left align = iota
	right
)

type column struct {
	header string
	width  int
	align  align
}

// Ambiguous-width runes count as one cell regardless of the terminal locale.
var cond = &runewidth.Condition{EastAsianWidth: false}

var columns = []column{
	{header: "No", width: 4, align: right},
	{header: "Фамилия", width: 30, align: left},
	{header: "Имя", width: 20, align: left},
	{header: "Номер телефона", width: 15, align: right},
	// Year is a fifth visible column; the original layout only bordered four.
	{header: "Год", width: 8, align: right},
}

// Render writes workers to w, numbering rows from 1.
func Render(w io.Writer, workers []roster.Worker) error {
	if len(workers) == 0 {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}
	var b strings.Builder
	rule := ruleLine()
	b.WriteString(rule)
	b.WriteString(headerLine())
	b.WriteString(rule)
	for i, wk := range workers {
		b.WriteString(rowLine(i+1, wk))
		b.WriteString(rule)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func ruleLine() string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strings.Repeat("-", c.width)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+\n"
}

func headerLine() string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = center(c.header, c.width)
	}
	return joinRow(cells)
}

func rowLine(idx int, wk roster.Worker) string {
	year := ""
	if wk.Year != nil {
		year = strconv.Itoa(*wk.Year)
	}
	values := []string{strconv.Itoa(idx), wk.Surname, wk.Name, wk.PhoneNumber(), year}
	cells := make([]string, len(columns))
	for i, c := range columns {
		if c.align == right {
			cells[i] = cond.FillLeft(values[i], c.width)
		} else {
			cells[i] = cond.FillRight(values[i], c.width)
		}
	}
	return joinRow(cells)
}

func joinRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - cond.StringWidth(s)
	if pad <= 0 {
		return s
	}
	l := pad / 2
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", pad-l)
}

package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
)

const defaultWidth = 80

type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return defaultWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " quote")
	default:
		_, _ = c.Fprintln(pp.out(), " quotes")
	}
}

// Quote prints the quoted text and its bracketed category, wrapping long text.
func (pp *PrettyPrint) Quote(q quote.Quote) {
	t := color.New(color.Italic)
	c := color.New(color.FgHiYellow)

	text := wordwrap.String(strconv.Quote(q.Text), pp.width())
	_, _ = t.Fprint(pp.out(), text)
	_, _ = fmt.Fprint(pp.out(), " — ")
	_, _ = c.Fprintf(pp.out(), "[%s]\n", q.Category)
}

// Empty prints a faint placeholder line.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

// Table prints quotes as an aligned table.
func (pp *PrettyPrint) Table(list []quote.Quote) {
	if len(list) == 0 {
		pp.Empty("none")
		return
	}
	table := uitable.New()
	table.MaxColWidth = uint(pp.width() - 20)
	table.Wrap = true
	table.AddRow("#", "CATEGORY", "QUOTE")
	for i, q := range list {
		table.AddRow(i+1, q.Category, q.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), table)
}

// Categories prints each category with its quote count, marking selected.
func (pp *PrettyPrint) Categories(list []quote.Quote, selected string) {
	counts := make(map[string]int)
	for _, q := range list {
		counts[q.Category]++
	}
	table := uitable.New()
	table.AddRow("", "CATEGORY", "QUOTES")
	marker := func(name string) string {
		if name == selected || (name == quote.AllCategories && quote.IsAll(selected)) {
			return "*"
		}
		return ""
	}
	table.AddRow(marker(quote.AllCategories), quote.AllCategories, len(list))
	for _, cat := range quote.Categories(list) {
		table.AddRow(marker(cat), cat, counts[cat])
	}
	_, _ = fmt.Fprintln(pp.out(), table)
}

// Status prints a sync status in green, or red for failures.
func (pp *PrettyPrint) Status(s reconcile.Status) {
	c := color.New(color.FgGreen)
	if s.IsError() {
		c = color.New(color.FgRed)
	}
	_, _ = c.Fprintln(pp.out(), s.Message)
}

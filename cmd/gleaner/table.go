package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/poiesic/gleaner/core"
	"github.com/poiesic/gleaner/storage"
)

type column struct {
	title string
	width int
	value func(*core.Article) string
}

var columns = []column{
	{"PUBLISHED", 16, func(a *core.Article) string { return a.PubDate.UTC().Format("2006-01-02 15:04") }},
	{"TITLE", 48, func(a *core.Article) string { return a.Title }},
	{"AUTHOR", 18, func(a *core.Article) string { return strings.Join(a.Author, ", ") }},
	{"ENTITIES", 32, func(a *core.Article) string { return strings.Join(a.Entities, ", ") }},
}

// renderTable prints a page of articles as aligned columns. Cells are
// measured in display width, so wide characters line up.
func renderTable(w io.Writer, result *storage.QueryResult) {
	if len(result.Articles) == 0 {
		fmt.Fprintf(w, "No articles found (%d total).\n", result.Total)
		return
	}

	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = col.title
	}
	writeRow(w, cells)

	for _, a := range result.Articles {
		for i, col := range columns {
			cells[i] = col.value(a)
		}
		writeRow(w, cells)
	}

	pages := 1
	if result.Limit > 0 {
		pages = max((result.Total+result.Limit-1)/result.Limit, 1)
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d articles)\n", result.Page, pages, result.Total)
}

func writeRow(w io.Writer, cells []string) {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(fit(cell, columns[i].width))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

// fit collapses whitespace, truncates s to width display cells and pads it.
func fit(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

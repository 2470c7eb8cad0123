// Package cli содержит форматирование результатов расчетов для терминала.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Цвета темы
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Row строка таблицы "параметр: значение"
type Row struct {
	Label string
	Value string
	Total bool
}

// Separator разделитель между группами строк
var Separator = Row{Label: "---"}

// RenderTitle рисует заголовок в рамке
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(46).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable рисует таблицу из двух колонок; значения выравниваются вправо
func RenderTable(title string, rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth, valueWidth := 0, 0
	for _, r := range rows {
		if r == Separator {
			continue
		}
		labelWidth = max(labelWidth, len(r.Label))
		valueWidth = max(valueWidth, len(r.Value))
	}

	line := func(left, mid, right string) string {
		return dimStyle.Render(left+strings.Repeat("─", labelWidth+2)+mid+strings.Repeat("─", valueWidth+2)+right) + "\n"
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
	}

	b.WriteString(line("╭", "┬", "╮"))
	for _, r := range rows {
		if r == Separator {
			b.WriteString(line("├", "┼", "┤"))
			continue
		}
		style := valueStyle
		if r.Total {
			style = totalStyle
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %-*s ", labelWidth, r.Label)))
		b.WriteString(dimStyle.Render("│"))
		b.WriteString(style.Render(fmt.Sprintf(" %*s ", valueWidth, r.Value)))
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(line("╰", "┴", "╯"))

	return b.String()
}

// RenderErrors выводит ошибки проверки по полям в стабильном порядке
func RenderErrors(errs map[string][]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(errorStyle.Render("  Invalid input"))
	b.WriteString("\n")
	for _, f := range fields {
		for _, msg := range errs[f] {
			if f == "" {
				fmt.Fprintf(&b, "    %s\n", msg)
				continue
			}
			fmt.Fprintf(&b, "    %s %s\n", mutedStyle.Render(f+":"), msg)
		}
	}
	return b.String()
}

// RenderError выводит одиночную ошибку расчета
func RenderError(err error) string {
	return errorStyle.Render("  Error: ") + err.Error() + "\n"
}

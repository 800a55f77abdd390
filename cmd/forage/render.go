package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pthm-cable/forage/allocation"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	headStyle  = lipgloss.NewStyle().Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// render formats the evaluation for a terminal.
func render(e *allocation.Evaluation, only []allocation.Criterion) string {
	var sections []string

	sections = append(sections, titleStyle.Render("Foraging decision"))

	pl := e.Plan
	sections = append(sections, infoStyle.Render(fmt.Sprintf(
		"Gathering %d apples leaves room to fell %d trees per day (utility %.2f).",
		pl.Apples, pl.Trees, pl.Utility)))
	if pl.Efficient() {
		sections = append(sections, okStyle.Render("All daily actions are in use."))
	} else {
		sections = append(sections, warnStyle.Render(fmt.Sprintf(
			"%d daily actions are left unused.", pl.ActionsUnused)))
	}

	sections = append(sections, boxStyle.Render(optimaTable(e.Optima, only)))
	sections = append(sections, headStyle.Render("Guidance: ")+e.Proximity.Advice())

	rec := pl.Recommended()
	sections = append(sections, fmt.Sprintf(
		"To spend every action, gather %d apples and fell %d trees.", rec.Apples, rec.Trees))

	r := e.Relaxation
	sections = append(sections, fmt.Sprintf(
		"Frontier optimum: %.2f apples, %.2f trees, utility %.2f.", r.Apples, r.Trees, r.Utility))

	if n := len(e.Days); n > 0 {
		last := e.Days[n-1]
		sections = append(sections, fmt.Sprintf(
			"After %d days: %d apples, %.0f wood.", last.Day, last.Apples, last.Wood))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func optimaTable(o allocation.Optima, only []allocation.Criterion) string {
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-14s %8s %8s %10s", "Criterion", "Apples", "Trees", "Utility")))
	for _, c := range only {
		rec := o.Get(c)
		fmt.Fprintf(&b, "\n%-14s %8d %8d %10.2f", c.Label(), rec.Allocation.Apples, rec.Allocation.Trees, rec.Utility)
	}
	return b.String()
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderLintTable writes lints as a table followed by a count line.
func RenderLintTable(w io.Writer, lints []domain.Lint) {
	if len(lints) == 0 {
		fmt.Fprintln(w, "(0 lints)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Lint", "Group", "Applicability", "Clippy", "Config", "Enabled"})
	for _, l := range lints {
		t.AppendRow(table.Row{
			l.ID,
			l.Group,
			l.Applicability,
			l.ClippySeverity,
			l.EffectiveSeverity(),
			l.EnabledByDefault,
		})
	}
	t.Render()
	fmt.Fprintf(w, "(%d lints)\n", len(lints))
}

// RenderLintDetail formats one catalog definition with its per-profile
// severities and reachable adjustments.
func RenderLintDetail(d catalog.Definition, prefix string) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render(prefix+d.ID) + "\n" +
		dimStyle.Render(fmt.Sprintf("%s · %s", d.Group, d.Applicability))))
	b.WriteString("\n\n")

	section(&b, "Description", d.Description)
	section(&b, "What's bad", d.WhatsBad)
	if d.KnownProblems != "" {
		section(&b, "Known problems", d.KnownProblems)
	}
	if d.Issue != "" {
		section(&b, "Issues", d.Issue)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Profile", "Severity", "Decrease", "Increase"})
	t.AppendRow(table.Row{"clippy", d.ClippySeverity,
		domain.Decrease{Base: d.ClippySeverity}, domain.Increase{Base: d.ClippySeverity}})
	for _, p := range domain.AllProfiles() {
		s := d.Severity(p)
		t.AppendRow(table.Row{p, s, domain.Decrease{Base: s}, domain.Increase{Base: s}})
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if d.UseClippySeverity {
		b.WriteString("\n  " + hintStyle.Render("Profiles defer to clippy's default severity for this lint.") + "\n")
	}
	if d.Disabled {
		b.WriteString("\n  " + hintStyle.Render("Disabled by default.") + "\n")
	}
	return b.String()
}

func section(b *strings.Builder, title, body string) {
	b.WriteString("  " + sectionHeaderStyle.Render(title) + "\n")
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("\n")
}

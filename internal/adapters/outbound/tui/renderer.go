package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	severityColors = map[domain.Severity]lipgloss.Color{
		domain.SeverityAllow: success,
		domain.SeverityWarn:  warning,
		domain.SeverityDeny:  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderGenerate formats the files written by a generate run.
func RenderGenerate(report *domain.GenerateReport) string {
	var b strings.Builder

	title := headerStyle.Render("cargo-configure")
	subtitle := dimStyle.Render("clippy lint profiles")
	dir := titleStyle.Render(report.OutputDir)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + dir))
	b.WriteString("\n\n")

	for _, f := range report.Files {
		name := padRight(f.Profile, 10)
		fmt.Fprintf(&b, "  %s %s %s  %s\n",
			passStyle.Render("●"),
			titleStyle.Render(name),
			fileStyle.Render(shortenPath(f.Path)),
			dimStyle.Render(fmt.Sprintf("%d lints, %d bytes", f.Lints, f.Bytes)),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	return b.String()
}

// RenderDrift formats a generate --check report.
func RenderDrift(report *domain.DriftReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Profile files") + "  " + dimStyle.Render(report.OutputDir) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, f := range report.Files {
		var icon, status string
		switch f.Status {
		case domain.DriftNone:
			icon, status = passStyle.Render("●"), passStyle.Render("up to date")
		case domain.DriftMissing:
			icon, status = failStyle.Render("●"), failStyle.Render("missing")
		default:
			icon, status = warnStyle.Render("●"), warnStyle.Render("stale")
		}
		fmt.Fprintf(&b, "    %s %s %s  %s\n", icon, padRight(f.Profile, 10), fileStyle.Render(shortenPath(f.Path)), status)
	}

	b.WriteString("\n")
	if report.Clean() {
		b.WriteString("  " + passStyle.Render("All profile files match the catalog.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Profile files are out of date. Run cargo-configure generate.") + "\n")
	}
	return b.String()
}

// RenderPolicy formats a zuu.toml group split.
func RenderPolicy(path string, p domain.Policy) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Policy") + "  " + fileStyle.Render(shortenPath(path)) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	rows := []struct {
		sev    domain.Severity
		groups []string
	}{
		{domain.SeverityAllow, p.Allow},
		{domain.SeverityWarn, p.Warn},
		{domain.SeverityDeny, p.Deny},
	}
	for _, r := range rows {
		groups := strings.Join(r.groups, ", ")
		if groups == "" {
			groups = faintStyle.Render("none")
		}
		fmt.Fprintf(&b, "    %s %s\n", SeverityTag(r.sev), groups)
	}
	return b.String()
}

// SeverityTag renders a fixed-width colored severity label.
func SeverityTag(s domain.Severity) string {
	color, ok := severityColors[s]
	if !ok {
		color = fg
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(padRight(s.String(), 5))
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

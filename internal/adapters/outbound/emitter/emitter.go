// Package emitter serializes per-profile lint lists into commented TOML
// files consumed by the clippy configuration loader.
package emitter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/fsutil"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// TOMLWriter implements domain.ProfileWriter.
type TOMLWriter struct {
	// Prefix qualifies the lint id in the stanza header, e.g. "clippy::".
	Prefix string
	// Width is the column at which comment text wraps. Zero disables wrapping.
	Width int
}

// New creates a TOMLWriter. An empty prefix falls back to "clippy::".
func New(prefix string, width int) *TOMLWriter {
	if prefix == "" {
		prefix = domain.DefaultToolPrefix
	}
	if width < 0 {
		width = 0
	}
	return &TOMLWriter{Prefix: prefix, Width: width}
}

// Render writes one stanza per lint to w, in input order.
func (t *TOMLWriter) Render(w io.Writer, lints []domain.Lint) error {
	var b strings.Builder
	for _, l := range lints {
		t.stanza(&b, l)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing lints: %w", err)
	}
	return nil
}

func (t *TOMLWriter) stanza(b *strings.Builder, l domain.Lint) {
	sep := func() { b.WriteString("#\n") }

	sep()
	t.comment(b, "Lint "+l.QualifiedID(t.Prefix))
	sep()
	t.comment(b, l.Description)
	sep()
	t.comment(b, l.WhatsBad)
	sep()
	if l.KnownProblems != "" {
		t.comment(b, "Known problems : "+l.KnownProblems)
		sep()
	}
	if l.Issue != "" {
		t.comment(b, "Issue : "+l.Issue)
		sep()
	}
	t.comment(b, "Clippy decrease possible "+l.DecreaseClippy().String())
	sep()
	t.comment(b, "Clippy increase possible "+l.IncreaseClippy().String())
	sep()
	t.comment(b, "Default configuration decrease possible "+l.DecreaseConfig().String())
	sep()
	t.comment(b, "Default configuration increase possible "+l.IncreaseConfig().String())
	sep()

	fmt.Fprintf(b, "[%s]\n", l.ID)
	fmt.Fprintf(b, "group = %q\n", l.Group)
	fmt.Fprintf(b, "applicability = %q\n", l.Applicability)
	fmt.Fprintf(b, "enabled = %t\n", l.EnabledByDefault)
	fmt.Fprintf(b, "config-severity = %q\n", l.Severity)
	fmt.Fprintf(b, "clippy-severity = %q\n", l.ClippySeverity)
	fmt.Fprintf(b, "use-clippy-severity = %t\n", l.UseClippySeverity)
	b.WriteString("\n")
}

// comment writes text as "# " prefixed lines. Embedded newlines are kept and
// empty lines become a bare "#".
func (t *TOMLWriter) comment(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			b.WriteString("#\n")
			continue
		}
		for _, wrapped := range Wrap(line, t.Width-2) {
			b.WriteString("# ")
			b.WriteString(wrapped)
			b.WriteString("\n")
		}
	}
}

// Wrap breaks line on word boundaries so no piece exceeds width columns.
// A single word longer than width is kept whole. width <= 0 disables
// wrapping.
func Wrap(line string, width int) []string {
	if width <= 0 || len(line) <= width {
		return []string{line}
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var out []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			out = append(out, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(out, cur)
}

// Emit renders lints to dir/filename, creating dir as needed. The content is
// written to a temporary file in dir and renamed into place, so a failed
// write leaves any previous file untouched. An empty list still produces an
// (empty) file. It returns the path written.
func (t *TOMLWriter) Emit(dir, filename string, lints []domain.Lint) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Render(&buf, lints); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return path, nil
}

// EmitAll writes one file per profile, in the given order, and stops at the
// first failure. Files already written are left in place. A nil profile list
// means every profile.
func (t *TOMLWriter) EmitAll(dir string, src domain.CatalogSource, profiles []domain.Profile) ([]string, error) {
	if profiles == nil {
		profiles = domain.AllProfiles()
	}
	paths := make([]string, 0, len(profiles))
	for _, p := range profiles {
		path, err := t.Emit(dir, p.Filename(), src.For(p))
		if err != nil {
			return paths, fmt.Errorf("emitting %s profile: %w", p, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Factory adapts New to domain.ProfileWriterFactory.
func Factory(prefix string, width int) domain.ProfileWriter {
	return New(prefix, width)
}

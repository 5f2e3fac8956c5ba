package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffFrom renders a human-readable comparison of this spec against an older
// one, covering the effective channels, conda packages, and pip packages in
// that order. Sections without changes are omitted; an identical spec yields
// the empty string.
//
// This is strictly a presentation helper. Equality decisions belong to
// ChannelsAndPackagesHash or explicit field comparison.
func (s *EnvSpec) DiffFrom(old *EnvSpec) string {
	var sections []string

	if lines, changed := diffLines(old.Channels(), s.Channels()); changed {
		section := []string{"  channels:"}
		for _, line := range lines {
			section = append(section, "    "+line)
		}
		sections = append(sections, section...)
	}

	if lines, changed := diffLines(old.CondaPackages(), s.CondaPackages()); changed {
		for _, line := range lines {
			sections = append(sections, "  "+line)
		}
	}

	if lines, changed := diffLines(old.PipPackages(), s.PipPackages()); changed {
		section := []string{"  pip:"}
		for _, line := range lines {
			section = append(section, "    "+line)
		}
		sections = append(sections, section...)
	}

	return strings.Join(sections, "\n")
}

// diffLines produces ndiff-style markers ("- ", "+ ", "  ") from an LCS match
// of the two sequences. changed reports whether any line differs.
func diffLines(old, current []string) (lines []string, changed bool) {
	matcher := difflib.NewMatcher(old, current)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, item := range old[op.I1:op.I2] {
				lines = append(lines, "  "+item)
			}
		case 'd':
			changed = true
			for _, item := range old[op.I1:op.I2] {
				lines = append(lines, "- "+item)
			}
		case 'i':
			changed = true
			for _, item := range current[op.J1:op.J2] {
				lines = append(lines, "+ "+item)
			}
		case 'r':
			changed = true
			for _, item := range old[op.I1:op.I2] {
				lines = append(lines, "- "+item)
			}
			for _, item := range current[op.J1:op.J2] {
				lines = append(lines, "+ "+item)
			}
		}
	}
	return lines, changed
}

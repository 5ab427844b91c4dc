// Package testutil provides helpers for testing UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences, including graphics payloads, so
// rendered output can be compared as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of s in terminal cells.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// Lines splits plain output into lines, dropping trailing empty lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

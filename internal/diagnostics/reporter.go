package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders diagnostics against the source they refer to.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for one source file
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n"),
	}
}

// Format renders d with a location header, one line of context on each
// side, and a caret marker under the offending span.
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// error[E0001]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	line := d.Position.Line
	width := lineNumberWidth(line)
	indent := strings.Repeat(" ", width)

	if line <= 0 {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), r.filename))
	} else {
		result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, line, d.Position.Column))
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

		if line > 1 && line-1 <= len(r.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", width, line-1)), dim("│"), r.lines[line-2]))
		}

		if line <= len(r.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				bold(fmt.Sprintf("%*d", width, line)), dim("│"), r.lines[line-1]))
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				indent, dim("│"), createMarker(d.Position.Column, d.Length, d.Level)))
		}

		if line < len(r.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", width, line+1)), dim("│"), r.lines[line]))
		}
	}

	if len(d.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		for i, s := range d.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n", indent, cyan("help"), cyan("try"), s.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("    "), s.Message))
			}

			if s.Replacement != "" {
				replacement := strings.ReplaceAll(s.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("│"), cyan(replacement)))
			}
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range d.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), blue("note:"), note))
	}

	if d.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), green("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll renders each diagnostic in order.
func (r *Reporter) FormatAll(diags []Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(r.Format(d))
	}
	return b.String()
}

func levelColor(level Level) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker underlines length runes starting at column.
func createMarker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}

	return strings.Repeat(" ", max(0, column-1)) + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}

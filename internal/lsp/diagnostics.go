package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sigil/internal/diagnostics"
)

const diagnosticSource = "sigil"

// ConvertDiagnostics transforms diagnostics into LSP form. Columns are
// re-measured in UTF-16 code units against the line text, as LSP requires.
func ConvertDiagnostics(text string, diags []diagnostics.Diagnostic) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	result := make([]protocol.Diagnostic, 0, len(diags))

	for _, d := range diags {
		line := max(0, d.Position.Line-1)
		var lineText string
		if line < len(lines) {
			lineText = lines[line]
		}

		startCol := max(0, d.Position.Column-1)
		endCol := startCol + max(1, d.Length)

		message := d.Message
		if len(d.Suggestions) > 0 {
			message += "\nhelp: " + d.Suggestions[0].Message
		}

		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: utf16Column(lineText, startCol)},
				End:   protocol.Position{Line: uint32(line), Character: utf16Column(lineText, endCol)},
			},
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  message,
		})
	}

	return result
}

func severity(level diagnostics.Level) protocol.DiagnosticSeverity {
	switch level {
	case diagnostics.Warning:
		return protocol.DiagnosticSeverityWarning
	case diagnostics.Note, diagnostics.Help:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

// utf16Column converts a rune column to UTF-16 code units. Columns past the
// end of the line count one unit per missing rune.
func utf16Column(line string, runeCol int) uint32 {
	units := 0
	n := 0
	for _, r := range line {
		if n == runeCol {
			break
		}
		units += len(utf16.Encode([]rune{r}))
		n++
	}
	return uint32(units + max(0, runeCol-n))
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	diags := ConvertDiagnostics(doc.text, doc.diagnostics)
	log.Debugf("publishing %d diagnostics for %s", len(diags), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

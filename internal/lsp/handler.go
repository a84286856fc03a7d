package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sigil/internal/ast"
	"sigil/internal/diagnostics"
	"sigil/internal/parser"
	"sigil/internal/semantic"
)

const Name = "sigil"

var log = commonlog.GetLogger("sigil.lsp")

// document is the last analyzed state of an open file.
type document struct {
	text        string
	ast         *ast.Document // nil when the text does not parse
	diagnostics []diagnostics.Diagnostic
}

// SigilHandler implements the LSP server handlers for sigil sources
type SigilHandler struct {
	version string
	fs      afero.Fs

	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

// NewSigilHandler creates a handler that reads unopened files from fs
func NewSigilHandler(fs afero.Fs, version string) *SigilHandler {
	return &SigilHandler{
		version: version,
		fs:      fs,
		docs:    make(map[protocol.DocumentUri]*document),
	}
}

// Protocol wires the handler methods into a glsp protocol handler
func (h *SigilHandler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// Initialize responds to the client's initialize request and advertises the server's capabilities
func (h *SigilHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &h.version,
		},
	}, nil
}

func (h *SigilHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *SigilHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *SigilHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen analyzes the opened text and publishes its diagnostics
func (h *SigilHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidChange re-analyzes the document. Sync is full, so the last
// change carries the complete text.
func (h *SigilHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	if len(params.ContentChanges) == 0 {
		return nil
	}

	var text string
	switch change := params.ContentChanges[len(params.ContentChanges)-1].(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		text = change.Text
	case protocol.TextDocumentContentChangeEvent:
		if change.Range != nil {
			return fmt.Errorf("incremental change for %s: server only supports full sync", params.TextDocument.URI)
		}
		text = change.Text
	default:
		return fmt.Errorf("unsupported content change %T", change)
	}

	doc := h.update(params.TextDocument.URI, text)
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *SigilHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, &document{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *SigilHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	doc, err := h.getOrLoad(ctx, uri)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.ast)
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

func (h *SigilHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	content, err := afero.ReadFile(h.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(uri, string(content))
	publishDiagnostics(ctx, uri, doc)
	return doc, nil
}

// update analyzes text and stores the result under uri.
func (h *SigilHandler) update(uri protocol.DocumentUri, text string) *document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	doc := &document{text: text}
	parsed, err := parser.ParseSource(path, text)
	if err != nil {
		doc.diagnostics = []diagnostics.Diagnostic{diagnostics.FromError(path, err)}
	} else {
		doc.ast = parsed
		doc.diagnostics = semantic.NewAnalyzer().Analyze(parsed)
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	return doc
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

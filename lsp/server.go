// Package lsp exposes rendering to editors through the Language Server
// Protocol.
package lsp

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/java/ast"
	"github.com/dhamidi/srcview/java/source"
	"github.com/dhamidi/srcview/view"
)

const lsName = "srcview"

// CommandRender renders a document or class to HTML. Its single argument
// is a document URI or an internal class name.
const CommandRender = "srcview.render"

var log = commonlog.GetLogger("srcview.lsp")

type document struct {
	text []byte
	unit *ast.CompilationUnit
	err  error
}

type Server struct {
	renderer *view.Renderer
	handler  protocol.Handler
	server   *server.Server
	version  string

	mu   sync.Mutex
	docs map[string]*document
}

func NewServer(renderer *view.Renderer, version string) *Server {
	ls := &Server{
		renderer: renderer,
		version:  version,
		docs:     make(map[string]*document),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		WorkspaceExecuteCommand:    ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.DocumentSymbolProvider = true
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{CommandRender},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) update(uri string, text []byte) {
	unit, err := source.Parse(context.Background(), text)
	if err != nil {
		log.Warningf("%s: %s", uri, err)
	}
	ls.mu.Lock()
	ls.docs[uri] = &document{text: text, unit: unit, err: err}
	ls.mu.Unlock()
}

func (ls *Server) document(uri string) (*document, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	d, ok := ls.docs[uri]
	return d, ok
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := ls.document(params.TextDocument.URI)
	if !ok || doc.unit == nil || doc.unit.Unparsable {
		return nil, nil
	}
	var resolver anchor.Resolver
	if ls.renderer.Classes != nil {
		resolver = anchor.NewModelResolver(doc.unit, ls.renderer.Classes)
	}
	var symbols []protocol.DocumentSymbol
	for _, t := range doc.unit.Types {
		symbols = append(symbols, typeSymbol(t, resolver))
	}
	return symbols, nil
}

func (ls *Server) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != CommandRender {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
	if len(params.Arguments) != 1 {
		return nil, fmt.Errorf("%s: want 1 argument, got %d", CommandRender, len(params.Arguments))
	}
	arg, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: argument must be a string", CommandRender)
	}

	if doc, ok := ls.document(arg); ok {
		if doc.err != nil {
			return nil, doc.err
		}
		html, _, err := ls.renderer.RenderUnit(classOf(arg, doc.unit), doc.text, doc.unit)
		return html, err
	}

	res := ls.renderer.Render(context.Background(), arg)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.HTML, nil
}

// classOf names the main class of a document for cache keys: its first
// type, or the file name when the unit declares none.
func classOf(uri string, unit *ast.CompilationUnit) string {
	if name := view.MainClass(unit); name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(uriToPath(uri)), ".java")
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

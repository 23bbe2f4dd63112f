package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/view"
)

const uri = "file:///work/p/A.java"

const text = `package p;

class A {
    int n;

    A() {}

    void run() {}
}
`

func newTestServer() *Server {
	classes := java.NewRegistry()
	classes.Add(&java.ClassModel{
		Name:    "p/A",
		Fields:  []java.FieldModel{{Name: "n", Descriptor: "I"}},
		Methods: []java.MethodModel{{Name: "<init>", Descriptor: "()V"}, {Name: "run", Descriptor: "()V"}},
	})
	return NewServer(&view.Renderer{Classes: classes, Options: format.DefaultOptions()}, "test")
}

func open(t *testing.T, ls *Server, content string) {
	t.Helper()
	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "java", Text: content},
	}))
}

func TestDocumentSymbols(t *testing.T) {
	ls := newTestServer()
	open(t, ls, text)

	got, err := ls.textDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols, ok := got.([]protocol.DocumentSymbol)
	require.True(t, ok, "got %T", got)
	require.Len(t, symbols, 1)

	class := symbols[0]
	assert.Equal(t, "A", class.Name)
	assert.Equal(t, protocol.SymbolKindClass, class.Kind)
	assert.Equal(t, protocol.UInteger(2), class.Range.Start.Line)

	tests := []struct {
		name   string
		kind   protocol.SymbolKind
		detail string
	}{
		{"n", protocol.SymbolKindField, anchor.FieldAnchor("n;;I")},
		{"A", protocol.SymbolKindConstructor, anchor.MethodAnchor("<init>()V")},
		{"run", protocol.SymbolKindMethod, anchor.MethodAnchor("run()V")},
	}
	require.Len(t, class.Children, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := class.Children[i]
			assert.Equal(t, tt.name, s.Name)
			assert.Equal(t, tt.kind, s.Kind)
			require.NotNil(t, s.Detail)
			assert.Equal(t, tt.detail, *s.Detail)
		})
	}
}

func TestDidChangeReplacesDocument(t *testing.T) {
	ls := newTestServer()
	open(t, ls, text)
	require.NoError(t, ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "package p;\nclass B {}\n"}},
	}))

	got, err := ls.textDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols := got.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 1)
	assert.Equal(t, "B", symbols[0].Name)
	assert.Empty(t, symbols[0].Children)

	require.NoError(t, ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	got, err = ls.textDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExecuteRender(t *testing.T) {
	ls := newTestServer()
	open(t, ls, text)

	got, err := ls.workspaceExecuteCommand(nil, &protocol.ExecuteCommandParams{
		Command:   CommandRender,
		Arguments: []any{uri},
	})
	require.NoError(t, err)
	html, ok := got.(string)
	require.True(t, ok, "got %T", got)
	assert.Contains(t, html, `id="`+anchor.MethodAnchor("run()V")+`"`)

	tests := []struct {
		name   string
		params protocol.ExecuteCommandParams
	}{
		{"unknown command", protocol.ExecuteCommandParams{Command: "other", Arguments: []any{uri}}},
		{"no argument", protocol.ExecuteCommandParams{Command: CommandRender}},
		{"non-string argument", protocol.ExecuteCommandParams{Command: CommandRender, Arguments: []any{1.0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ls.workspaceExecuteCommand(nil, &tt.params)
			assert.Error(t, err)
		})
	}
}

func TestClassOf(t *testing.T) {
	ls := newTestServer()
	open(t, ls, text)
	doc, ok := ls.document(uri)
	require.True(t, ok)
	assert.Equal(t, "p/A", classOf(uri, doc.unit))
}

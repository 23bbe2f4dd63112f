// Package mcp provides an MCP (Model Context Protocol) server so agents can
// render classes and look up member anchors.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/classfile"
	"github.com/dhamidi/srcview/java/source"
	"github.com/dhamidi/srcview/ui"
	"github.com/dhamidi/srcview/view"
)

var log = commonlog.GetLogger("srcview.mcp")

// Tool names.
const (
	ToolRenderClass  = "render_class"
	ToolListAnchors  = "list_anchors"
	ToolRenderSource = "render_source"
)

// AllTools lists the tools in registration order.
var AllTools = []string{ToolRenderClass, ToolListAnchors, ToolRenderSource}

// Server wraps the MCP server with the renderer it exposes.
type Server struct {
	mcpServer *server.MCPServer
	renderer  *view.Renderer
	tools     []string
}

// New creates a server with every tool registered.
func New(renderer *view.Renderer, version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"srcview",
			version,
			server.WithToolCapabilities(false),
		),
		renderer: renderer,
	}
	s.registerRenderClassTool()
	s.registerListAnchorsTool()
	s.registerRenderSourceTool()
	return s
}

// ListTools returns the names of the registered tools.
func (s *Server) ListTools() []string {
	return append([]string(nil), s.tools...)
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

// ServeStdio serves requests on stdin and stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerRenderClassTool() {
	tool := mcp.NewTool(ToolRenderClass,
		mcp.WithDescription("Decompile a class and render it as HTML. Fields and methods carry anchor ids."),
		mcp.WithString("class",
			mcp.Required(),
			mcp.Description("Class name, internal (java/util/List) or dotted (java.util.List)"),
		),
	)
	s.addTool(tool, s.handleRenderClass)
}

func (s *Server) registerListAnchorsTool() {
	tool := mcp.NewTool(ToolListAnchors,
		mcp.WithDescription("List the anchor ids of a rendered class as JSON, with the member each one names."),
		mcp.WithString("class",
			mcp.Required(),
			mcp.Description("Class name, internal or dotted"),
		),
	)
	s.addTool(tool, s.handleListAnchors)
}

func (s *Server) registerRenderSourceTool() {
	tool := mcp.NewTool(ToolRenderSource,
		mcp.WithDescription("Parse Java source text and render it as HTML."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Java compilation unit"),
		),
		mcp.WithString("class",
			mcp.Description("Internal name of the class, used for anchors (default: first type in the source)"),
		),
	)
	s.addTool(tool, s.handleRenderSource)
}

func classArg(req mcp.CallToolRequest) (string, bool) {
	name, ok := req.GetArguments()["class"].(string)
	if !ok || name == "" {
		return "", false
	}
	return classfile.SourceToInternalName(name), true
}

func (s *Server) handleRenderClass(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	class, ok := classArg(req)
	if !ok {
		return mcp.NewToolResultError("class parameter is required"), nil
	}
	res := s.renderer.Render(ctx, class)
	if res.Err != nil {
		log.Warningf("%s: %s", class, res.Err)
		return mcp.NewToolResultError(view.Describe(res.Err)), nil
	}
	return mcp.NewToolResultText(res.HTML), nil
}

func (s *Server) handleListAnchors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	class, ok := classArg(req)
	if !ok {
		return mcp.NewToolResultError("class parameter is required"), nil
	}
	res := s.renderer.Render(ctx, class)
	if res.Err != nil {
		return mcp.NewToolResultError(view.Describe(res.Err)), nil
	}
	infos, err := ui.Anchors(res.HTML)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := json.MarshalIndent(struct {
		Class   string          `json:"class"`
		Anchors []ui.AnchorInfo `json:"anchors"`
	}{class, infos}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode anchors: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleRenderSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, _ := req.GetArguments()["source"].(string)
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("source parameter is required"), nil
	}
	src := []byte(text)
	unit, err := source.Parse(ctx, src)
	if err != nil {
		return mcp.NewToolResultError(view.Describe(err)), nil
	}
	class, ok := classArg(req)
	if !ok {
		class = view.MainClass(unit)
	}
	html, _, err := s.renderer.RenderUnit(class, src, unit)
	if err != nil {
		return mcp.NewToolResultError(view.Describe(err)), nil
	}
	return mcp.NewToolResultText(html), nil
}

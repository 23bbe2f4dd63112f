// Package ui serves rendered classes over HTTP.
package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/classfile"
	"github.com/dhamidi/srcview/decompile"
	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/view"
)

var log = commonlog.GetLogger("srcview.ui")

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	renderer   *view.Renderer
	classes    *java.Registry
	theme      string
	staticFS   fs.FS
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

// NewServer returns a viewer for the classes in the registry. Templates
// and static files found below ui/ in the working directory take
// precedence over the embedded ones.
func NewServer(renderer *view.Renderer, classes *java.Registry, theme string) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"sourceName": classfile.InternalToSourceName,
		"limit": func(n int, names []string) []string {
			if n >= len(names) {
				return names
			}
			return names[:n]
		},
	}

	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		renderer:   renderer,
		classes:    classes,
		theme:      theme,
		staticFS:   staticFS,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /c/{className...}", s.handleClass)
	s.mux.HandleFunc("GET /bytecode/{className...}", s.handleBytecode)
	s.mux.HandleFunc("GET /api/anchors/{className...}", s.handleAnchors)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("execute %s: %s", name, err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}

// className accepts both internal and dotted names.
func className(r *http.Request) string {
	return classfile.SourceToInternalName(r.PathValue("className"))
}

// PageData is passed to class.html.
type PageData struct {
	Theme  string
	Class  string
	View   string
	Jump   string
	Failed bool
	Text   template.HTML
}

func (s *Server) page(class, viewName string, r *http.Request) PageData {
	data := PageData{Theme: s.theme, Class: class, View: viewName}
	if jump := r.URL.Query().Get("jump"); jump != "" {
		if _, _, err := anchor.ParseAnchor(jump); err == nil {
			data.Jump = jump
		} else {
			log.Warningf("ignoring jump target %q: %s", jump, err)
		}
	}
	return data
}

func (s *Server) handleClass(w http.ResponseWriter, r *http.Request) {
	class := className(r)
	res := s.renderer.Render(r.Context(), class)

	data := s.page(class, "source", r)
	data.Failed = res.Err != nil
	data.Text = template.HTML(res.HTML)

	status := http.StatusOK
	if errors.Is(res.Err, decompile.ErrResourceNotFound) {
		status = http.StatusNotFound
	}
	s.render(w, status, "class.html", data)
}

func (s *Server) handleBytecode(w http.ResponseWriter, r *http.Request) {
	class := className(r)
	model, ok := s.classes.Class(class)
	if !ok {
		http.Error(w, "class not found", http.StatusNotFound)
		return
	}

	data := s.page(class, "bytecode", r)
	data.Text = template.HTML(format.Listing(model, s.renderer.Options))
	s.render(w, http.StatusOK, "class.html", data)
}

// AnchorInfo describes one anchor in a rendered class.
type AnchorInfo struct {
	ID     string      `json:"id"`
	Kind   anchor.Kind `json:"kind"`
	Member string      `json:"member"`
}

func (s *Server) handleAnchors(w http.ResponseWriter, r *http.Request) {
	class := className(r)
	res := s.renderer.Render(r.Context(), class)
	if res.Err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(res.Err, decompile.ErrResourceNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, view.Describe(res.Err), status)
		return
	}

	infos, err := Anchors(res.HTML)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Class   string       `json:"class"`
		Anchors []AnchorInfo `json:"anchors"`
	}{class, infos})
}

// Anchors lists the anchors of a rendered class with their decoded member
// IDs.
func Anchors(rendered string) ([]AnchorInfo, error) {
	ids, err := anchor.Extract(rendered)
	if err != nil {
		return nil, err
	}
	infos := make([]AnchorInfo, 0, len(ids))
	for _, id := range ids {
		kind, member, err := anchor.ParseAnchor(id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, AnchorInfo{ID: id, Kind: kind, Member: member})
	}
	return infos, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const maxResults = 200
	query := strings.ToLower(r.URL.Query().Get("q"))

	var names []string
	total := 0
	for _, n := range s.classes.Names() {
		if strings.Contains(n, "$") {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(n), query) {
			continue
		}
		total++
		names = append(names, n)
	}

	data := struct {
		Theme        string
		Query        string
		Classes      []string
		Limit        int
		TotalMatches int
		HasMore      bool
	}{
		Theme:        s.theme,
		Query:        query,
		Classes:      names,
		Limit:        maxResults,
		TotalMatches: total,
		HasMore:      total > maxResults,
	}
	s.render(w, http.StatusOK, "index.html", data)
}

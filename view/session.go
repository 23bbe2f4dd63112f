// Package view renders classes for display. A Session follows the class
// the user selected: renders run in the background and only the result of
// the latest request is published.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/cache"
	"github.com/dhamidi/srcview/decompile"
	"github.com/dhamidi/srcview/format"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/java/ast"
)

var log = commonlog.GetLogger("srcview.view")

// Result is one finished render. On failure Err is set and HTML holds the
// failure view.
type Result struct {
	Request uint64
	Class   string
	HTML    string
	Err     error
	Source  []byte
	Unit    *ast.CompilationUnit
	Cached  bool
}

// Renderer decompiles and renders classes. It holds no per-request state
// and may be shared.
type Renderer struct {
	Decompiler decompile.Decompiler
	Classes    anchor.ClassLookup
	Cache      *cache.Cache
	Options    format.Options
	Style      string
}

// Render decompiles class and prints it. It never returns a zero result:
// failures are described by Result.Err and shown by Result.HTML.
func (r *Renderer) Render(ctx context.Context, class string) Result {
	res := Result{Class: class}
	out, err := r.Decompiler.Decompile(ctx, class)
	if out != nil {
		res.Source = out.Source
		res.Unit = out.Unit
	}
	if err != nil {
		res.Err = err
		res.HTML = r.failure(err, res.Source)
		return res
	}
	res.HTML, res.Cached, res.Err = r.RenderUnit(class, out.Source, out.Unit)
	if res.Err != nil {
		res.HTML = r.failure(res.Err, res.Source)
	}
	return res
}

// RenderUnit prints an already parsed unit, consulting the cache when one
// is configured. src is the text the unit was parsed from, if any.
func (r *Renderer) RenderUnit(class string, src []byte, unit *ast.CompilationUnit) (html string, cached bool, err error) {
	key := ""
	if r.Cache != nil {
		keySrc := src
		if keySrc == nil {
			if keySrc, err = ast.Marshal(unit); err != nil {
				return "", false, fmt.Errorf("cache key for %s: %w", class, err)
			}
		}
		key = cache.Key(class, keySrc, r.Options.Fingerprint())
		hit, gerr := r.Cache.Get(key)
		if gerr == nil {
			return hit, true, nil
		}
		if !errors.Is(gerr, cache.ErrMiss) {
			log.Warningf("cache lookup for %s: %s", class, gerr)
		}
	}

	html, err = format.Render(unit, r.Options, r.resolver(unit))
	if err != nil {
		return "", false, fmt.Errorf("render %s: %w", class, err)
	}
	if key != "" {
		if err := r.Cache.Put(key, class, html); err != nil {
			log.Warningf("cache store for %s: %s", class, err)
		}
	}
	return html, false, nil
}

func (r *Renderer) resolver(unit *ast.CompilationUnit) anchor.Resolver {
	if r.Classes == nil {
		return nil
	}
	return anchor.NewModelResolver(unit, r.Classes)
}

// MainClass returns the internal name of the first type declared in unit,
// or the empty string when it declares none.
func MainClass(unit *ast.CompilationUnit) string {
	if unit == nil || len(unit.Types) == 0 {
		return ""
	}
	name := unit.Types[0].TypeName()
	if unit.Package != nil {
		return strings.ReplaceAll(unit.Package.Name, ".", "/") + "/" + name
	}
	return name
}

// Session tracks the latest render request. Results of superseded requests
// are dropped when they complete.
type Session struct {
	renderer *Renderer

	mu       sync.Mutex
	requests uint64
	current  Result
	onUpdate func(Result)
}

// NewSession returns a session rendering with r. onUpdate, when not nil,
// is called with every published result.
func NewSession(r *Renderer, onUpdate func(Result)) *Session {
	return &Session{renderer: r, onUpdate: onUpdate}
}

// Update starts rendering class. The returned channel receives the result
// if it is still the latest request when it completes, and is closed
// either way.
func (s *Session) Update(ctx context.Context, class string) <-chan Result {
	s.mu.Lock()
	s.requests++
	id := s.requests
	s.mu.Unlock()

	done := make(chan Result, 1)
	go func() {
		defer close(done)
		res := s.renderer.Render(ctx, class)
		res.Request = id

		s.mu.Lock()
		if id != s.requests {
			s.mu.Unlock()
			log.Debugf("dropping stale render %d of %s", id, class)
			return
		}
		s.current = res
		s.mu.Unlock()

		if res.Err != nil {
			log.Errorf("%s: %s", class, res.Err)
		}
		if s.onUpdate != nil {
			s.onUpdate(res)
		}
		done <- res
	}()
	return done
}

// Current returns the latest published result.
func (s *Session) Current() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// JumpTarget returns the anchor of a field or method model in rendered
// output.
func (s *Session) JumpTarget(member any) (string, bool) {
	switch m := member.(type) {
	case java.FieldModel:
		return anchor.FieldAnchor(m.ID()), true
	case *java.FieldModel:
		return anchor.FieldAnchor(m.ID()), true
	case java.MethodModel:
		return anchor.MethodAnchor(m.ID()), true
	case *java.MethodModel:
		return anchor.MethodAnchor(m.ID()), true
	}
	return "", false
}

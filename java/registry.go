package java

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/classfile"
)

var log = commonlog.GetLogger("srcview.java")

// Registry holds class models by internal name. It is safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*ClassModel
}

func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*ClassModel)}
}

// Add registers c, replacing any earlier model of the same name. A nested
// class ("Outer$Inner") is also listed among the inner classes of its outer
// class, which is created empty if it is not known yet.
func (r *Registry) Add(c *ClassModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.classes[c.Name]; ok {
		c.Inner = mergeInner(c.Inner, old.Inner)
	}
	r.classes[c.Name] = c
	r.link(c)
}

func (r *Registry) link(c *ClassModel) {
	pos := strings.LastIndexByte(c.Name, '$')
	if pos <= 0 {
		return
	}
	outerName := c.Name[:pos]
	outer, ok := r.classes[outerName]
	if !ok {
		outer = &ClassModel{Name: outerName}
		r.classes[outerName] = outer
		r.link(outer)
	}
	outer.Inner = mergeInner(outer.Inner, []*ClassModel{c})
}

// mergeInner adds the classes of extra to list, replacing entries of the
// same name.
func mergeInner(list, extra []*ClassModel) []*ClassModel {
	for _, e := range extra {
		replaced := false
		for i, c := range list {
			if c.Name == e.Name {
				list[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, e)
		}
	}
	return list
}

// Class returns the model named name. Both internal and dotted names are
// accepted.
func (r *Registry) Class(name string) (*ClassModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[classfile.SourceToInternalName(name)]
	return c, ok
}

// Names returns the internal names of all registered classes in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for n := range r.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// LoadDir registers every class file below root. Files that fail to parse
// are logged and skipped; they count towards the returned error only when
// nothing could be loaded.
func (r *Registry) LoadDir(root string) error {
	var failures []error
	loaded := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".class" {
			return nil
		}
		model, err := ClassModelFromFile(path)
		if err != nil {
			log.Warningf("skipping %s: %s", path, err)
			failures = append(failures, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		r.Add(model)
		loaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan class path %s: %w", root, err)
	}
	if loaded == 0 && len(failures) > 0 {
		return errors.Join(failures...)
	}
	log.Infof("loaded %d classes from %s", loaded, root)
	return nil
}

package decompile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dhamidi/srcview/classfile"
)

// Placeholders expanded in Command.Args.
const (
	// ArgClass is replaced by the path of the top-level class file.
	ArgClass = "{class}"
	// ArgClasses, as a whole argument, expands to the top-level class file
	// followed by the class files of its nested classes.
	ArgClasses = "{classes}"
	// ArgOut is replaced by a fresh output directory. Without it the
	// decompiled source is read from standard output.
	ArgOut = "{out}"
)

// Command runs an external decompiler, such as Vineflower, on class files
// below ClassRoot.
type Command struct {
	ClassRoot string
	Args      []string
}

func (c Command) Decompile(ctx context.Context, class string) (*Output, error) {
	if len(c.Args) == 0 {
		return nil, errors.New("decompile: empty command")
	}
	top := TopLevel(class)
	files, err := c.classFiles(top)
	if err != nil {
		return nil, err
	}

	out := ""
	for _, a := range c.Args {
		if strings.Contains(a, ArgOut) {
			dir, err := os.MkdirTemp("", "srcview-decompile-*")
			if err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
			defer os.RemoveAll(dir)
			out = dir
			break
		}
	}

	var args []string
	for _, a := range c.Args {
		if a == ArgClasses {
			args = append(args, files...)
			continue
		}
		a = strings.ReplaceAll(a, ArgClass, files[0])
		a = strings.ReplaceAll(a, ArgOut, out)
		args = append(args, a)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.Debugf("running %s", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("decompile %s: %w", class, err)
		}
		return nil, fmt.Errorf("decompile %s: %w: %s", class, err, msg)
	}

	src := stdout.Bytes()
	if out != "" {
		src, err = findSource(out, simpleName(top))
		if err != nil {
			return nil, fmt.Errorf("decompile %s: %w", class, err)
		}
	}
	return parse(ctx, class, src)
}

// classFiles returns the class file of top followed by those of its
// nested classes. A nested class listed in InnerClasses but missing on
// disk is reported as ErrResourceNotFound: decompiling without it would
// silently drop its body.
func (c Command) classFiles(top string) ([]string, error) {
	path := filepath.Join(c.ClassRoot, filepath.FromSlash(top)+".class")
	cf, err := classfile.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	files := []string{path}
	pending := cf.NestedClasses()
	seen := map[string]bool{top: true}
	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]
		if seen[name] {
			continue
		}
		seen[name] = true

		p := filepath.Join(c.ClassRoot, filepath.FromSlash(name)+".class")
		inner, err := classfile.ParseFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("nested class %s of %s: %w", name, top, ErrResourceNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, p)
		pending = append(pending, inner.NestedClasses()...)
	}
	return files, nil
}

// findSource returns the <name>.java written below dir, or the only .java
// file there.
func findSource(dir, name string) ([]byte, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".java" {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, p := range found {
		if filepath.Base(p) == name+".java" {
			return os.ReadFile(p)
		}
	}
	if len(found) == 1 {
		return os.ReadFile(found[0])
	}
	return nil, fmt.Errorf("no %s.java in decompiler output", name)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dhamidi/srcview/anchor"
	"github.com/dhamidi/srcview/classfile"
	"github.com/dhamidi/srcview/java/source"
	"github.com/dhamidi/srcview/view"
)

func newRenderCmd() *cobra.Command {
	var output string
	var jump string
	var noCache bool
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <class|file.java>",
		Short: "Render a class or a .java file as HTML",
		Long: `Render a class or a .java file as HTML.

A class name (internal like java/util/List, or dotted) is looked up through
the configured decompilers. A path ending in .java is parsed directly.

With --jump the output is a complete page that scrolls to and highlights
the given anchor, which must be present in the rendered class.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			if jump != "" {
				if _, _, err := anchor.ParseAnchor(jump); err != nil {
					return fmt.Errorf("--jump: %w", err)
				}
			}

			e, err := newEnv(cfg, !noCache)
			if err != nil {
				return err
			}
			defer e.Close()

			class, html, err := renderArg(cmd.Context(), e.renderer, args[0])
			if err != nil {
				return err
			}

			w := io.Writer(os.Stdout)
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			if jump == "" {
				_, err = io.WriteString(w, html)
				return err
			}
			ids, err := anchor.Extract(html)
			if err != nil {
				return fmt.Errorf("read anchors: %w", err)
			}
			if !slices.Contains(ids, jump) {
				return fmt.Errorf("--jump: %s has no anchor %q", class, jump)
			}
			return writePage(w, class, html, jump)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().StringVar(&jump, "jump", "", "anchor to highlight, such as method-run()V")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")
	flags.register(cmd.Flags())

	return cmd
}

// renderArg renders a .java path or a class name and returns the class it
// rendered.
func renderArg(ctx context.Context, r *view.Renderer, arg string) (string, string, error) {
	if filepath.Ext(arg) == ".java" {
		src, err := os.ReadFile(arg)
		if err != nil {
			return "", "", fmt.Errorf("read file: %w", err)
		}
		unit, err := source.Parse(ctx, src)
		if err != nil {
			var pe *source.ParseError
			if errors.As(err, &pe) {
				pe.File = arg
			}
			return "", "", errors.New(view.Describe(err))
		}
		class := view.MainClass(unit)
		html, _, err := r.RenderUnit(class, src, unit)
		if err != nil {
			return "", "", errors.New(view.Describe(err))
		}
		return class, html, nil
	}

	class := classfile.SourceToInternalName(arg)
	res := r.Render(ctx, class)
	if res.Err != nil {
		return "", "", errors.New(view.Describe(res.Err))
	}
	if res.Cached {
		log.Debugf("%s: served from cache", class)
	}
	return class, res.HTML, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Class}}</title>
<style>
pre.source { font-family: monospace; }
.keyword { font-weight: bold; color: #7f0055; }
.string { color: #2a00ff; }
.number { color: #125; }
.comment { color: #3f7f5f; }
.javadoc { color: #3f5fbf; }
.annotation { color: #646464; }
.highlight { background: #fff3a0; }
</style>
</head>
<body>
<pre class="source">{{.HTML}}</pre>
<script>
const target = document.getElementById({{.Jump}});
if (target) {
  target.classList.add("highlight");
  target.scrollIntoView({block: "center"});
}
</script>
</body>
</html>
`))

func writePage(w io.Writer, class, html, jump string) error {
	return pageTemplate.Execute(w, struct {
		Class string
		HTML  template.HTML
		Jump  string
	}{classfile.InternalToSourceName(class), template.HTML(html), jump})
}

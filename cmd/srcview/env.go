package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/srcview/cache"
	"github.com/dhamidi/srcview/config"
	"github.com/dhamidi/srcview/decompile"
	"github.com/dhamidi/srcview/java"
	"github.com/dhamidi/srcview/view"
)

var log = commonlog.GetLogger("srcview.cmd")

// loadConfig reads --config, or the config file in the working directory.
// A missing file is not an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if errors.Is(err, config.ErrConfigNotFound) {
		if path != "" {
			return nil, fmt.Errorf("load config: %w", err)
		}
		log.Debug("no config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// renderFlags holds the printer option flags shared by rendering commands.
// Flags the user did not set leave the config values alone.
type renderFlags struct {
	indentStyle  string
	indentWidth  int
	comments     bool
	javadoc      bool
	orderImports bool
	enumRow      int
	alignParams  bool
	alignChain   bool
}

func (f *renderFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.indentStyle, "indent", "", "indentation: tabs or spaces")
	flags.IntVar(&f.indentWidth, "indent-width", 0, "spaces per level, or tab width")
	flags.BoolVar(&f.comments, "comments", true, "print comments")
	flags.BoolVar(&f.javadoc, "javadoc", true, "print javadoc")
	flags.BoolVar(&f.orderImports, "order-imports", false, "sort imports")
	flags.IntVar(&f.enumRow, "enum-row", 0, "most enum constants printed on one row")
	flags.BoolVar(&f.alignParams, "align-params", false, "align wrapped parameters to a column")
	flags.BoolVar(&f.alignChain, "align-chain", false, "align chained calls to the first call")
}

// apply copies the flags that were set into cfg and validates the result.
func (f *renderFlags) apply(flags *pflag.FlagSet, cfg *config.Config) error {
	r := &cfg.Render
	if flags.Changed("indent") {
		r.IndentStyle = f.indentStyle
	}
	if flags.Changed("indent-width") {
		r.IndentWidth = f.indentWidth
	}
	if flags.Changed("comments") {
		r.PrintComments = f.comments
	}
	if flags.Changed("javadoc") {
		r.PrintJavadoc = f.javadoc
	}
	if flags.Changed("order-imports") {
		r.OrderImports = f.orderImports
	}
	if flags.Changed("enum-row") {
		r.MaxEnumConstantsOnRow = f.enumRow
	}
	if flags.Changed("align-params") {
		r.AlignParameters = f.alignParams
	}
	if flags.Changed("align-chain") {
		r.AlignFirstMethodChain = f.alignChain
	}
	return cfg.Validate()
}

// env is what the serving and rendering commands share.
type env struct {
	cfg      *config.Config
	classes  *java.Registry
	renderer *view.Renderer
	cache    *cache.Cache
}

func (e *env) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

// newEnv builds the class registry, the decompiler chain and the cache
// from cfg.
func newEnv(cfg *config.Config, useCache bool) (*env, error) {
	e := &env{cfg: cfg, classes: java.NewRegistry()}

	d := cfg.Decompiler
	if d.ClassRoot != "" {
		if err := e.classes.LoadDir(d.ClassRoot); err != nil {
			return nil, fmt.Errorf("load classes: %w", err)
		}
	}

	e.renderer = &view.Renderer{
		Decompiler: decompilers(d),
		Classes:    e.classes,
		Options:    cfg.Options(),
		Style:      highlightStyle(cfg.Server.Theme),
	}

	if useCache && cfg.Cache.Enabled {
		c, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		e.cache = c
		e.renderer.Cache = c
	}
	return e, nil
}

func decompilers(d config.DecompilerConfig) decompile.Chain {
	var chain decompile.Chain
	if d.SourceRoot != "" {
		chain = append(chain, decompile.SourceDir{Root: d.SourceRoot})
	}
	if d.TreeRoot != "" {
		chain = append(chain, decompile.TreeDir{Root: d.TreeRoot})
	}
	if len(d.Command) > 0 {
		chain = append(chain, decompile.Command{ClassRoot: d.ClassRoot, Args: d.Command})
	}
	return chain
}

// highlightStyle picks the chroma style for raw source in failure views.
func highlightStyle(theme string) string {
	if theme == "dark" {
		return "monokai"
	}
	return "github"
}

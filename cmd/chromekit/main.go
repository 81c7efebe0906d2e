package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/config"
	"github.com/1broseidon/chromekit/internal/logging"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/1broseidon/chromekit/internal/render"
	"github.com/1broseidon/chromekit/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "hittest":
		os.Exit(runHitTest(os.Args[2:]))
	case "map":
		os.Exit(runMap(os.Args[2:]))
	case "colors":
		os.Exit(runColors(os.Args[2:]))
	case "attach":
		os.Exit(runAttach(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chromekit <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  hittest X Y         Classify a window position in a scene")
	fmt.Fprintln(w, "  map                 Draw the classification of a whole scene")
	fmt.Fprintln(w, "  colors              Print the default title bar palette")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  attach              Bind to an X11 window and run window hooks")
	fmt.Fprintln(w, "  mcp                 Serve a scene over MCP (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config path         Print the config file location")
	fmt.Fprintln(w, "  config validate     Validate the config file")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'chromekit <command> --help' for command-specific options.")
}

// env is what every command needs after startup: the user config and a
// logger built from it.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	closeLog func() error
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, closeLog: closeLog}, nil
}

func (e *env) close() {
	if err := e.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// loadLayout reads the scene named by path, falling back to the configured
// default scene.
func (e *env) loadLayout(path string) (*scene.Layout, error) {
	if path == "" {
		path = e.cfg.DefaultScene
	}
	if path == "" {
		return nil, errors.New("no scene: pass --scene or set default_scene in the config")
	}
	sc, err := config.LoadScene(path)
	if err != nil {
		return nil, err
	}
	return scene.Build(sc, e.log), nil
}

func runHitTest(args []string) int {
	fs := flag.NewFlagSet("hittest", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	scenePath := fs.String("scene", "", "Scene file (default: default_scene from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chromekit hittest [--scene FILE] X Y")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print button:<role>, draggable, excluded, client or outside.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	x, errX := strconv.Atoi(fs.Arg(0))
	y, errY := strconv.Atoi(fs.Arg(1))
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "Error: X and Y must be integers, got %q %q\n", fs.Arg(0), fs.Arg(1))
		return 2
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer e.close()

	layout, err := e.loadLayout(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ctx := chrome.New(nil, chrome.WithLogger(e.log))
	layout.Bind(ctx)

	fmt.Println(ctx.Classify(platform.Point{X: x, Y: y}))
	return 0
}

func runMap(args []string) int {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	scenePath := fs.String("scene", "", "Scene file (default: default_scene from config)")
	cell := fs.Int("cell", 0, "Cell width in pixels (default: fit the terminal)")
	noColor := fs.Bool("no-color", false, "Disable colours")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chromekit map [--scene FILE] [--cell N] [--no-color]")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 || *cell < 0 {
		fs.Usage()
		return 2
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer e.close()

	layout, err := e.loadLayout(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ctx := chrome.New(nil, chrome.WithLogger(e.log))
	layout.Bind(ctx)

	size := layout.Window.Size()
	opts := render.Options{
		Cell:  *cell,
		Color: !*noColor && render.IsTerminal(os.Stdout),
	}
	if opts.Cell == 0 {
		opts.Cell = render.FitCell(size.Width, render.TerminalColumns(os.Stdout))
	}
	fmt.Print(render.Map(ctx, size, opts))
	fmt.Println(render.Legend(opts.Color))
	return 0
}

func runColors(args []string) int {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chromekit colors")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	ctx := chrome.New(nil)
	h := chrome.DefaultColors{Colors: make(map[string]color.RGBA)}
	ctx.Invoke(h)

	names := make([]string, 0, len(h.Colors))
	for name := range h.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	swatch := render.IsTerminal(os.Stdout)
	for _, name := range names {
		c := h.Colors[name]
		line := fmt.Sprintf("%-14s %s", name, render.Hex(c))
		if swatch {
			line += "  " + render.Swatch(c)
		}
		fmt.Println(line)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  chromekit config path")
		fmt.Fprintln(os.Stderr, "  chromekit config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  chromekit config print [--path PATH]")
		return 2
	}

	switch args[0] {
	case "path":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(path)
		return 0

	case "validate", "print":
		fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/chromekit/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var (
			cfg *config.Config
			err error
		)
		if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if args[0] == "validate" {
			if cfg.DefaultScene != "" {
				if _, err := config.LoadScene(cfg.DefaultScene); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return 1
				}
			}
			fmt.Println("config: ok")
			return 0
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("# %s\n", cfg.Path())
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

// parsePoint reads "X,Y".
func parsePoint(s string) (platform.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return platform.Point{}, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return platform.Point{}, fmt.Errorf("invalid x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return platform.Point{}, fmt.Errorf("invalid y in %q", s)
	}
	return platform.Point{X: x, Y: y}, nil
}

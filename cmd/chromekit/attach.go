package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/1broseidon/chromekit/internal/scene"
	"github.com/1broseidon/chromekit/internal/xchrome"
)

// activeWindower is implemented by backends that can name the focused window.
type activeWindower interface {
	ActiveWindow() (platform.WindowID, error)
}

func runAttach(args []string) int {
	fs := flag.NewFlagSet("attach", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	windowFlag := fs.String("window", "", "X11 window id, decimal or 0x-prefixed (default: active window)")
	centralize := fs.Bool("centralize", false, "Centre the window on its monitor")
	raise := fs.Bool("raise", false, "Restore the window if minimized and raise it")
	menu := fs.String("menu", "", "Show the window menu at X,Y (window coordinates)")
	move := fs.String("move", "", "Start an interactive move from X,Y (window coordinates)")
	theme := fs.String("theme", "", "Theme variant to publish: light or dark (default: theme_variant from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chromekit attach [--window ID] [--centralize] [--raise] [--menu X,Y] [--move X,Y] [--theme light|dark]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Bind a window context to an X11 window and run the requested hooks in")
		fmt.Fprintln(os.Stderr, "the order listed above.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return 2
	}

	var menuPos, movePos *platform.Point
	for _, spec := range []struct {
		raw string
		dst **platform.Point
	}{{*menu, &menuPos}, {*move, &movePos}} {
		if spec.raw == "" {
			continue
		}
		p, err := parsePoint(spec.raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		*spec.dst = &p
	}

	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer e.close()

	backend, disconnect, err := platform.NewDefaultBackend(e.cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer disconnect()

	id, err := resolveWindow(backend, *windowFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !backend.WindowExists(id) {
		fmt.Fprintf(os.Stderr, "Error: window 0x%x does not exist\n", uint32(id))
		return 1
	}

	host := scene.New(e.log)
	host.BindNative(backend, id)
	ctx := chrome.New(xchrome.New(backend), chrome.WithLogger(e.log))

	variant := *theme
	if variant == "" {
		variant = e.cfg.ThemeVariant
	}
	if variant != "" {
		ctx.SetWindowAttribute(xchrome.ThemeVariantAttribute, variant)
	}
	ctx.Setup(host, host)

	win := ctx.Window()
	if win == nil {
		fmt.Fprintln(os.Stderr, "Error: no window attached")
		return 1
	}

	if *centralize {
		ctx.Invoke(chrome.Centralize{})
	}
	if *raise {
		ctx.Invoke(chrome.RaiseWindow{})
	}
	if menuPos != nil {
		ctx.ShowSystemMenu(*menuPos)
	}
	if movePos != nil {
		ctx.Invoke(xchrome.StartSystemMove{Pos: *movePos})
	}

	size := win.Size()
	screen := win.Screen()
	fmt.Printf("window:  0x%x\n", uint32(win.ID()))
	fmt.Printf("size:    %dx%d\n", size.Width, size.Height)
	fmt.Printf("screen:  %dx%d+%d+%d\n", screen.Width, screen.Height, screen.X, screen.Y)
	fmt.Printf("state:   %s\n", host.WindowState(nil))
	if v := ctx.WindowAttribute(xchrome.ThemeVariantAttribute); v != nil {
		fmt.Printf("theme:   %v\n", v)
	}
	return 0
}

func resolveWindow(backend platform.Backend, raw string) (platform.WindowID, error) {
	if raw != "" {
		n, err := strconv.ParseUint(raw, 0, 32)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("invalid window id %q", raw)
		}
		return platform.WindowID(n), nil
	}
	aw, ok := backend.(activeWindower)
	if !ok {
		return 0, fmt.Errorf("backend cannot report the active window; pass --window")
	}
	id, err := aw.ActiveWindow()
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("no active window; pass --window")
	}
	return id, nil
}

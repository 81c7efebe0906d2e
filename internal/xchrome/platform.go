// Package xchrome is the X11 flavour of chrome.Platform. It forwards the
// hooks that need the window manager to a platform.Backend and leaves the
// rest to chrome.BasePlatform.
package xchrome

import (
	"fmt"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
)

// Key is the platform key reported by Platform.
const Key = "x11"

// ThemeVariantAttribute is the window attribute mirrored to
// _GTK_THEME_VARIANT. Values are "light", "dark" or nil.
const ThemeVariantAttribute = "theme-variant"

// StartSystemMoveHook hands an interactive move to the window manager.
const StartSystemMoveHook = chrome.UserHook + 1

// StartSystemMove starts a window-manager move as if the title bar had been
// pressed at Pos, in window coordinates.
type StartSystemMove struct {
	Pos platform.Point
}

func (StartSystemMove) HookID() chrome.HookID { return StartSystemMoveHook }

// Platform implements chrome.Platform on X11.
type Platform struct {
	chrome.BasePlatform

	backend platform.Backend
	// bound is the native window seen by the last HandleChanged call.
	bound platform.WindowID
}

var _ chrome.Platform = (*Platform)(nil)

// New returns a platform driving backend.
func New(backend platform.Backend) *Platform {
	return &Platform{backend: backend}
}

// Key implements chrome.Platform.
func (p *Platform) Key() string { return Key }

// Bound returns the native window most recently attached, or zero.
func (p *Platform) Bound() platform.WindowID { return p.bound }

// Dispatch implements chrome.Platform.
func (p *Platform) Dispatch(c *chrome.Context, h chrome.Hook) {
	log := c.Logger()
	switch h := h.(type) {
	case chrome.ShowSystemMenu:
		p.withWindow(c, "show window menu", func(id platform.WindowID) error {
			return p.backend.ShowWindowMenu(id, h.Pos)
		})
	case StartSystemMove:
		p.withWindow(c, "start move", func(id platform.WindowID) error {
			return p.backend.StartMove(id, h.Pos)
		})
	case chrome.AttributeChanged:
		if h.Key != ThemeVariantAttribute {
			return
		}
		variant, err := themeVariant(h.New)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring theme variant")
			return
		}
		p.withWindow(c, "set theme variant", func(id platform.WindowID) error {
			return p.backend.SetThemeVariant(id, variant)
		})
	case chrome.SystemButtonAreaChanged:
		area := c.SystemButtonArea()
		log.Debug().
			Int("x", area.X).Int("y", area.Y).
			Int("width", area.Width).Int("height", area.Height).
			Msg("system button area changed")
	default:
		p.BasePlatform.Dispatch(c, h)
	}
}

// HandleChanged implements chrome.Platform. A newly attached window gets the
// current theme variant.
func (p *Platform) HandleChanged(c *chrome.Context, prev chrome.Window, destroyed bool) {
	log := c.Logger()
	win := c.Window()
	if win == nil {
		p.bound = 0
		if prev != nil {
			log.Info().Uint32("window", uint32(prev.ID())).Bool("destroyed", destroyed).Msg("window detached")
		}
		return
	}

	p.bound = win.ID()
	log.Info().Uint32("window", uint32(win.ID())).Msg("window attached")
	if v := c.WindowAttribute(ThemeVariantAttribute); v != nil {
		p.Dispatch(c, chrome.AttributeChanged{Key: ThemeVariantAttribute, New: v})
	}
}

func (p *Platform) withWindow(c *chrome.Context, action string, fn func(platform.WindowID) error) {
	log := c.Logger()
	win := c.Window()
	if win == nil || p.backend == nil {
		log.Debug().Str("action", action).Msg("no native window")
		return
	}
	if err := fn(win.ID()); err != nil {
		log.Warn().Err(err).Str("action", action).Uint32("window", uint32(win.ID())).Msg("x11 request failed")
	}
}

// themeVariant converts an attribute value to a _GTK_THEME_VARIANT string.
// nil clears the preference.
func themeVariant(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		switch v {
		case "", "light", "dark":
			return v, nil
		}
		return "", fmt.Errorf("unknown theme variant %q", v)
	default:
		return "", fmt.Errorf("theme variant must be a string, got %T", v)
	}
}

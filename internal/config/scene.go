package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
)

// RectSpec is a rectangle in window coordinates.
type RectSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect converts r to a platform.Rect.
func (r RectSpec) Rect() platform.Rect {
	return platform.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// ItemSpec describes one item of a scene.
type ItemSpec struct {
	Name     string   `yaml:"name,omitempty"`
	Rect     RectSpec `yaml:"rect"`
	Hidden   bool     `yaml:"hidden,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
}

// ItemName returns the name an item is known by: its own name, or fallback
// when it has none.
func (it ItemSpec) ItemName(fallback string) string {
	if it.Name != "" {
		return it.Name
	}
	return fallback
}

// TitleBarName is the fallback name of an unnamed title bar. Unnamed
// buttons fall back to their role name.
const TitleBarName = "title_bar"

// HitTestVisibleName is the fallback name of the i-th hit_test_visible item.
func HitTestVisibleName(i int) string { return fmt.Sprintf("hit_test_visible-%d", i) }

// ClientName is the fallback name of the i-th client item.
func ClientName(i int) string { return fmt.Sprintf("client-%d", i) }

// WindowSpec sizes the window a scene is laid out in.
type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Screen is the display the window sits on; defaults to 1920x1080 at the origin.
	Screen *RectSpec `yaml:"screen,omitempty"`
}

// SceneFile is the YAML description of a window's chrome layout.
type SceneFile struct {
	Window           WindowSpec          `yaml:"window"`
	TitleBar         *ItemSpec           `yaml:"title_bar,omitempty"`
	Buttons          map[string]ItemSpec `yaml:"buttons,omitempty"`
	HitTestVisible   []ItemSpec          `yaml:"hit_test_visible,omitempty"`
	Client           []ItemSpec          `yaml:"client,omitempty"`
	Attributes       map[string]any      `yaml:"attributes,omitempty"`
	SystemButtonArea *RectSpec           `yaml:"system_button_area,omitempty"`
}

// DefaultScreen is the display assumed when a scene does not name one.
var DefaultScreen = RectSpec{Width: 1920, Height: 1080}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	sc, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// ParseScene decodes and validates scene YAML.
func ParseScene(data []byte) (*SceneFile, error) {
	var sc SceneFile
	if err := decodeStrictYAML(data, &sc); err != nil {
		return nil, err
	}
	if sc.Window.Screen == nil {
		screen := DefaultScreen
		sc.Window.Screen = &screen
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate reports every invalid field in one error.
func (s *SceneFile) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, &ValidationError{Path: "window", Err: fmt.Errorf("width and height must be > 0")})
	}
	if s.Window.Screen != nil {
		errs = append(errs, validateRect("window.screen", *s.Window.Screen)...)
	}
	if s.TitleBar != nil {
		errs = append(errs, validateRect("title_bar.rect", s.TitleBar.Rect)...)
	}
	for _, name := range s.ButtonNames() {
		if _, ok := chrome.ParseSystemButton(name); !ok {
			errs = append(errs, &ValidationError{Path: "buttons." + name, Err: fmt.Errorf("unknown system button role")})
			continue
		}
		errs = append(errs, validateRect("buttons."+name+".rect", s.Buttons[name].Rect)...)
	}
	for i, it := range s.HitTestVisible {
		errs = append(errs, validateRect(fmt.Sprintf("hit_test_visible[%d].rect", i), it.Rect)...)
	}
	for i, it := range s.Client {
		errs = append(errs, validateRect(fmt.Sprintf("client[%d].rect", i), it.Rect)...)
	}
	if s.SystemButtonArea != nil {
		errs = append(errs, validateRect("system_button_area", *s.SystemButtonArea)...)
	}
	errs = append(errs, s.validateNames()...)
	return errors.Join(errs...)
}

// validateNames rejects two items sharing a name, counting fallback names.
func (s *SceneFile) validateNames() []error {
	var errs []error
	seen := make(map[string]string)
	claim := func(path, name string) {
		if first, ok := seen[name]; ok {
			errs = append(errs, &ValidationError{Path: path, Err: fmt.Errorf("name %q already used by %s", name, first)})
			return
		}
		seen[name] = path
	}
	if s.TitleBar != nil {
		claim("title_bar", s.TitleBar.ItemName(TitleBarName))
	}
	for _, name := range s.ButtonNames() {
		claim("buttons."+name, s.Buttons[name].ItemName(name))
	}
	for i, it := range s.HitTestVisible {
		claim(fmt.Sprintf("hit_test_visible[%d]", i), it.ItemName(HitTestVisibleName(i)))
	}
	for i, it := range s.Client {
		claim(fmt.Sprintf("client[%d]", i), it.ItemName(ClientName(i)))
	}
	return errs
}

// ButtonNames returns the configured button roles, sorted.
func (s *SceneFile) ButtonNames() []string {
	names := make([]string, 0, len(s.Buttons))
	for name := range s.Buttons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateRect(path string, r RectSpec) []error {
	if r.Width < 0 || r.Height < 0 {
		return []error{&ValidationError{Path: path, Err: fmt.Errorf("width and height must be >= 0")}}
	}
	return nil
}

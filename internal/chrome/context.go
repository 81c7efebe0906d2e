package chrome

import (
	"reflect"

	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/rs/zerolog"
)

// Context holds the chrome configuration of one window: its title bar,
// system buttons, hit-test exclusions and attributes, plus the native window
// currently bound to the host.
type Context struct {
	platform Platform
	log      zerolog.Logger

	host     any
	delegate Delegate

	attributes       map[string]any
	systemButtons    [buttonCount]ItemID
	titleBar         ItemID
	hitTestVisible   map[ItemID]struct{}
	systemButtonArea platform.Rect

	enabled bool
	window  Window
	// windowCache is the window the context last attached. It always holds
	// the same value as window; NotifyWinIDChange asks it for Alive() to tell
	// a destroyed native window from a replaced one.
	windowCache Window
}

// Option configures a Context.
type Option func(*Context)

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// New returns a context dispatching hooks to p. A nil p means BasePlatform.
// The context does nothing useful until Setup is called.
func New(p Platform, opts ...Option) *Context {
	if p == nil {
		p = BasePlatform{}
	}
	c := &Context{
		platform:       p,
		log:            zerolog.Nop(),
		attributes:     make(map[string]any),
		hitTestVisible: make(map[ItemID]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "chrome").Str("platform", p.Key()).Logger()
	return c
}

// Setup binds the context to host and delegate and enables it. Only the
// first call with a non-nil host and delegate has any effect.
func (c *Context) Setup(host any, delegate Delegate) {
	if c.host != nil || host == nil || delegate == nil {
		return
	}
	c.host = host
	c.delegate = delegate
	c.SetEnabled(true)
}

// Host returns the object passed to Setup.
func (c *Context) Host() any { return c.host }

// Delegate returns the delegate passed to Setup.
func (c *Context) Delegate() Delegate { return c.delegate }

// Key returns the platform key.
func (c *Context) Key() string { return c.platform.Key() }

// Logger returns the context logger, for use by platform implementations.
func (c *Context) Logger() *zerolog.Logger { return &c.log }

// Window returns the bound native window, or nil when detached.
func (c *Context) Window() Window { return c.window }

// Enabled reports whether the context tracks the host's window.
func (c *Context) Enabled() bool { return c.enabled }

// WindowAttribute returns the stored value of key, or nil.
func (c *Context) WindowAttribute(key string) any {
	return c.attributes[key]
}

// SetWindowAttribute stores value under key. When the value actually
// changes the platform receives an AttributeChanged hook.
func (c *Context) SetWindowAttribute(key string, value any) {
	old := c.attributes[key]
	if reflect.DeepEqual(old, value) {
		return
	}
	if value == nil {
		delete(c.attributes, key)
	} else {
		c.attributes[key] = value
	}
	c.log.Debug().Str("key", key).Interface("new", value).Interface("old", old).Msg("window attribute changed")
	c.platform.Dispatch(c, AttributeChanged{Key: key, New: value, Old: old})
}

// SetHitTestVisible excludes item from the draggable area when visible is
// true and puts it back when false. It reports false for the zero item.
func (c *Context) SetHitTestVisible(item ItemID, visible bool) bool {
	if item == 0 {
		c.log.Warn().Msg("SetHitTestVisible called without an item")
		return false
	}
	if visible {
		c.hitTestVisible[item] = struct{}{}
	} else {
		delete(c.hitTestVisible, item)
	}
	return true
}

// IsHitTestVisible reports whether item is excluded from the draggable area.
func (c *Context) IsHitTestVisible(item ItemID) bool {
	_, ok := c.hitTestVisible[item]
	return ok
}

// SetSystemButton registers item for role. It reports false, changing
// nothing, for Unknown or when item already holds the role.
func (c *Context) SetSystemButton(role SystemButton, item ItemID) bool {
	if !role.valid() {
		c.log.Warn().Int("role", int(role)).Msg("SetSystemButton called with an invalid role")
		return false
	}
	if c.systemButtons[role] == item {
		return false
	}
	c.systemButtons[role] = item
	return true
}

// SystemButtonItem returns the item registered for role.
func (c *Context) SystemButtonItem(role SystemButton) ItemID {
	if !role.valid() {
		return 0
	}
	return c.systemButtons[role]
}

// SetTitleBar makes item the title bar. It reports false for the zero item
// and when item is already the title bar.
func (c *Context) SetTitleBar(item ItemID) bool {
	if item == 0 {
		c.log.Warn().Msg("SetTitleBar called without an item")
		return false
	}
	if c.titleBar == item {
		return false
	}
	c.titleBar = item
	return true
}

// TitleBar returns the registered title bar item.
func (c *Context) TitleBar() ItemID { return c.titleBar }

// SetSystemButtonArea records the rectangle reserved for native system
// buttons and notifies the platform.
func (c *Context) SetSystemButtonArea(r platform.Rect) {
	c.systemButtonArea = r
	c.platform.Dispatch(c, SystemButtonAreaChanged{})
}

// SystemButtonArea returns the rectangle set by SetSystemButtonArea.
func (c *Context) SystemButtonArea() platform.Rect { return c.systemButtonArea }

// ShowSystemMenu asks the platform for the native system menu at pos.
func (c *Context) ShowSystemMenu(pos platform.Point) {
	c.platform.Dispatch(c, ShowSystemMenu{Pos: pos})
}

// Invoke dispatches h to the platform.
func (c *Context) Invoke(h Hook) {
	if h == nil {
		return
	}
	c.platform.Dispatch(c, h)
}

// SetEnabled starts or stops tracking the host's native window. Enabling
// attaches the window reported by the delegate; disabling detaches it.
func (c *Context) SetEnabled(enabled bool) {
	if enabled == c.enabled {
		return
	}
	// Enabling needs a delegate; until Setup the context stays disabled so
	// that Setup can attach.
	if enabled && c.delegate == nil {
		return
	}
	c.enabled = enabled

	if enabled {
		c.window = c.delegate.Window(c.host)
		c.windowCache = c.window
		if c.window != nil {
			c.handleChanged(nil, false)
		}
		return
	}

	if c.window == nil {
		return
	}
	prev := c.window
	c.window = nil
	c.windowCache = nil
	c.handleChanged(prev, false)
}

// NotifyWinIDChange re-reads the host's native window, for example after
// the host was reparented, and notifies the platform if it changed.
func (c *Context) NotifyWinIDChange() {
	if !c.enabled || c.delegate == nil {
		return
	}

	next := c.delegate.Window(c.host)
	if sameWindow(next, c.window) {
		return
	}

	prev := c.window
	destroyed := c.windowCache != nil && !c.windowCache.Alive()
	c.window = next
	c.windowCache = next
	c.handleChanged(prev, destroyed)
}

func (c *Context) handleChanged(prev Window, destroyed bool) {
	ev := c.log.Debug().Bool("destroyed", destroyed)
	if prev != nil {
		ev = ev.Uint32("prev", uint32(prev.ID()))
	}
	if c.window != nil {
		ev = ev.Uint32("window", uint32(c.window.ID()))
	}
	ev.Msg("window handle changed")
	c.platform.HandleChanged(c, prev, destroyed)
}

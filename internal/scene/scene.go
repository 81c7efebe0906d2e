// Package scene is an in-memory item tree that implements chrome.Delegate.
// Items are addressed by generation-checked handles, so a handle kept after
// its item was removed resolves to "absent" instead of to whatever item
// reuses the slot.
package scene

import (
	"sync"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/rs/zerolog"
)

// Item is one rectangle of chrome or client content.
type Item struct {
	Name     string
	Rect     platform.Rect
	Hidden   bool
	Disabled bool
}

type slot struct {
	gen   uint32
	alive bool
	item  Item
}

// Scene owns items and the window they are laid out in.
type Scene struct {
	mu     sync.Mutex
	slots  []slot
	free   []uint32
	byName map[string]chrome.ItemID

	window  chrome.Window
	backend platform.Backend
	state   platform.WindowState
	raised  int

	log zerolog.Logger
}

var _ chrome.Delegate = (*Scene)(nil)

// New returns an empty scene without a window.
func New(log zerolog.Logger) *Scene {
	return &Scene{
		byName: make(map[string]chrome.ItemID),
		log:    log.With().Str("component", "scene").Logger(),
	}
}

func makeID(index, gen uint32) chrome.ItemID {
	return chrome.ItemID(uint64(gen)<<32 | uint64(index+1))
}

func splitID(id chrome.ItemID) (index, gen uint32, ok bool) {
	low := uint32(uint64(id) & 0xffffffff)
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(uint64(id) >> 32), true
}

// lookup returns the live slot for id. Callers hold s.mu.
func (s *Scene) lookup(id chrome.ItemID) (*slot, bool) {
	index, gen, ok := splitID(id)
	if !ok || int(index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[index]
	if !sl.alive || sl.gen != gen {
		return nil, false
	}
	return sl, true
}

// Add inserts it and returns its handle. A non-empty name replaces any
// previous name binding.
func (s *Scene) Add(it Item) chrome.ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[index]
	sl.gen++
	sl.alive = true
	sl.item = it

	id := makeID(index, sl.gen)
	if it.Name != "" {
		s.byName[it.Name] = id
	}
	return id
}

// Remove deletes the item. Later lookups of id report absent.
func (s *Scene) Remove(id chrome.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.lookup(id)
	if !ok {
		return false
	}
	if name := sl.item.Name; name != "" && s.byName[name] == id {
		delete(s.byName, name)
	}
	sl.alive = false
	sl.item = Item{}
	index, _, _ := splitID(id)
	s.free = append(s.free, index)
	return true
}

// Get returns a copy of the item.
func (s *Scene) Get(id chrome.ItemID) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.lookup(id)
	if !ok {
		return Item{}, false
	}
	return sl.item, true
}

// Lookup finds an item by name.
func (s *Scene) Lookup(name string) (chrome.ItemID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byName[name]
	if !ok {
		return 0, false
	}
	if _, live := s.lookup(id); !live {
		return 0, false
	}
	return id, true
}

// Update applies fn to the live item. It reports false for stale handles.
func (s *Scene) Update(id chrome.ItemID, fn func(*Item)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.lookup(id)
	if !ok {
		return false
	}
	fn(&sl.item)
	return true
}

// Move sets the item's rectangle.
func (s *Scene) Move(id chrome.ItemID, r platform.Rect) bool {
	return s.Update(id, func(it *Item) { it.Rect = r })
}

// SetHidden shows or hides the item.
func (s *Scene) SetHidden(id chrome.ItemID, hidden bool) bool {
	return s.Update(id, func(it *Item) { it.Hidden = hidden })
}

// SetDisabled enables or disables the item.
func (s *Scene) SetDisabled(id chrome.ItemID, disabled bool) bool {
	return s.Update(id, func(it *Item) { it.Disabled = disabled })
}

// Items returns the live handles in slot order.
func (s *Scene) Items() []chrome.ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chrome.ItemID, 0, len(s.slots))
	for i := range s.slots {
		if s.slots[i].alive {
			out = append(out, makeID(uint32(i), s.slots[i].gen))
		}
	}
	return out
}

// SetWindow binds a window without native state control. Window state
// changes are then kept in the scene.
func (s *Scene) SetWindow(w chrome.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = w
	s.backend = nil
}

// BindNative binds the native window id reached through backend. State
// queries and raising go to the backend.
func (s *Scene) BindNative(backend platform.Backend, id platform.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = backend
	if w := platform.NewNativeWindow(backend, id); w != nil {
		s.window = w
	} else {
		s.window = nil
	}
}

// IsVisible implements chrome.Delegate.
func (s *Scene) IsVisible(id chrome.ItemID) bool {
	it, ok := s.Get(id)
	return ok && !it.Hidden
}

// IsEnabled implements chrome.Delegate.
func (s *Scene) IsEnabled(id chrome.ItemID) bool {
	it, ok := s.Get(id)
	return ok && !it.Disabled
}

// MapGeometryToScene implements chrome.Delegate. Item rectangles are
// already in window coordinates.
func (s *Scene) MapGeometryToScene(id chrome.ItemID) (platform.Rect, bool) {
	it, ok := s.Get(id)
	if !ok {
		return platform.Rect{}, false
	}
	return it.Rect, true
}

// Window implements chrome.Delegate. The host is ignored; a scene lays out
// exactly one window.
func (s *Scene) Window(any) chrome.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

// WindowState implements chrome.Delegate.
func (s *Scene) WindowState(any) platform.WindowState {
	s.mu.Lock()
	backend, win := s.backend, s.window
	state := s.state
	s.mu.Unlock()

	if backend == nil || win == nil {
		return state
	}
	native, err := backend.WindowState(win.ID())
	if err != nil {
		s.log.Warn().Err(err).Uint32("window", uint32(win.ID())).Msg("failed to read window state")
		return state
	}
	return native
}

// SetWindowState implements chrome.Delegate.
func (s *Scene) SetWindowState(_ any, state platform.WindowState) {
	s.mu.Lock()
	backend, win := s.backend, s.window
	s.state = state
	s.mu.Unlock()

	if backend == nil || win == nil {
		return
	}
	if err := backend.SetWindowState(win.ID(), state); err != nil {
		s.log.Warn().Err(err).Uint32("window", uint32(win.ID())).Str("state", state.String()).Msg("failed to set window state")
	}
}

// BringWindowToTop implements chrome.Delegate.
func (s *Scene) BringWindowToTop(any) {
	s.mu.Lock()
	backend, win := s.backend, s.window
	s.raised++
	s.mu.Unlock()

	if backend == nil || win == nil {
		return
	}
	if err := backend.Raise(win.ID()); err != nil {
		s.log.Warn().Err(err).Uint32("window", uint32(win.ID())).Msg("failed to raise window")
	}
}

// RaiseCount returns how often BringWindowToTop was called.
func (s *Scene) RaiseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raised
}

package chrome

import (
	"image/color"
	"testing"

	"github.com/1broseidon/chromekit/internal/platform"
)

type fakeItem struct {
	rect     platform.Rect
	hidden   bool
	disabled bool
}

type fakeWindow struct {
	id     platform.WindowID
	size   platform.Size
	screen platform.Rect
	pos    platform.Point
	moves  int
	dead   bool
}

func (w *fakeWindow) ID() platform.WindowID { return w.id }
func (w *fakeWindow) Size() platform.Size   { return w.size }
func (w *fakeWindow) Screen() platform.Rect { return w.screen }
func (w *fakeWindow) Alive() bool           { return !w.dead }
func (w *fakeWindow) SetPosition(p platform.Point) error {
	w.pos = p
	w.moves++
	return nil
}

type fakeDelegate struct {
	items  map[ItemID]*fakeItem
	window *fakeWindow
	state  platform.WindowState
	raised int
	states []platform.WindowState
}

func newFakeDelegate() *fakeDelegate {
	return &fakeDelegate{
		items:  make(map[ItemID]*fakeItem),
		window: &fakeWindow{id: 1, size: platform.Size{Width: 800, Height: 600}},
	}
}

func (d *fakeDelegate) add(id ItemID, r platform.Rect) *fakeItem {
	it := &fakeItem{rect: r}
	d.items[id] = it
	return it
}

func (d *fakeDelegate) IsVisible(item ItemID) bool {
	it, ok := d.items[item]
	return ok && !it.hidden
}

func (d *fakeDelegate) IsEnabled(item ItemID) bool {
	it, ok := d.items[item]
	return ok && !it.disabled
}

func (d *fakeDelegate) MapGeometryToScene(item ItemID) (platform.Rect, bool) {
	it, ok := d.items[item]
	if !ok {
		return platform.Rect{}, false
	}
	return it.rect, true
}

func (d *fakeDelegate) Window(any) Window {
	if d.window == nil {
		return nil
	}
	return d.window
}

func (d *fakeDelegate) WindowState(any) platform.WindowState { return d.state }

func (d *fakeDelegate) SetWindowState(_ any, s platform.WindowState) {
	d.state = s
	d.states = append(d.states, s)
}

func (d *fakeDelegate) BringWindowToTop(any) { d.raised++ }

type handleEvent struct {
	prev      Window
	destroyed bool
}

type recordingPlatform struct {
	BasePlatform
	hooks   []Hook
	handles []handleEvent
}

func (p *recordingPlatform) Key() string { return "test" }

func (p *recordingPlatform) Dispatch(c *Context, h Hook) {
	p.hooks = append(p.hooks, h)
	p.BasePlatform.Dispatch(c, h)
}

func (p *recordingPlatform) HandleChanged(_ *Context, prev Window, destroyed bool) {
	p.handles = append(p.handles, handleEvent{prev: prev, destroyed: destroyed})
}

func (p *recordingPlatform) attributeHooks() []AttributeChanged {
	var out []AttributeChanged
	for _, h := range p.hooks {
		if a, ok := h.(AttributeChanged); ok {
			out = append(out, a)
		}
	}
	return out
}

const (
	titleItem ItemID = iota + 1
	closeItem
	minItem
	searchItem
	iconItem
)

// newScenario builds the 800x32 title bar with a close button at
// (760,4)-(792,28).
func newScenario(t *testing.T) (*Context, *fakeDelegate, *recordingPlatform) {
	t.Helper()
	d := newFakeDelegate()
	d.add(titleItem, platform.Rect{X: 0, Y: 0, Width: 800, Height: 32})
	d.add(closeItem, platform.Rect{X: 760, Y: 4, Width: 32, Height: 24})

	p := &recordingPlatform{}
	c := New(p)
	c.Setup("host", d)
	if !c.SetTitleBar(titleItem) {
		t.Fatalf("SetTitleBar returned false")
	}
	if !c.SetSystemButton(Close, closeItem) {
		t.Fatalf("SetSystemButton returned false")
	}
	return c, d, p
}

func TestHitTest_Scenario(t *testing.T) {
	c, _, _ := newScenario(t)

	role, hit := c.IsInSystemButtons(platform.Point{X: 780, Y: 16})
	if !hit || role != Close {
		t.Fatalf("expected close hit, got %v %v", role, hit)
	}
	if c.IsInTitleBarDraggableArea(platform.Point{X: 780, Y: 16}) {
		t.Fatalf("button position must not be draggable")
	}

	role, hit = c.IsInSystemButtons(platform.Point{X: 400, Y: 16})
	if hit || role != Unknown {
		t.Fatalf("expected no hit, got %v %v", role, hit)
	}
	if !c.IsInTitleBarDraggableArea(platform.Point{X: 400, Y: 16}) {
		t.Fatalf("expected (400,16) to be draggable")
	}

	if c.IsInTitleBarDraggableArea(platform.Point{X: 400, Y: 500}) {
		t.Fatalf("expected (400,500) to be outside the title bar")
	}
}

func TestIsInSystemButtons_LowestRoleWins(t *testing.T) {
	c, d, _ := newScenario(t)
	d.add(minItem, platform.Rect{X: 750, Y: 0, Width: 50, Height: 32})
	d.add(iconItem, platform.Rect{X: 770, Y: 0, Width: 30, Height: 32})
	c.SetSystemButton(Minimize, minItem)
	c.SetSystemButton(WindowIcon, iconItem)

	role, hit := c.IsInSystemButtons(platform.Point{X: 780, Y: 16})
	if !hit || role != WindowIcon {
		t.Fatalf("expected window-icon, got %v", role)
	}
	role, _ = c.IsInSystemButtons(platform.Point{X: 765, Y: 16})
	if role != Minimize {
		t.Fatalf("expected minimize, got %v", role)
	}
}

func TestIsInSystemButtons_SkipsHiddenDisabledAndVanished(t *testing.T) {
	c, d, _ := newScenario(t)
	pos := platform.Point{X: 780, Y: 16}

	d.items[closeItem].hidden = true
	if _, hit := c.IsInSystemButtons(pos); hit {
		t.Fatalf("hidden button must not be hit")
	}
	if !c.IsInTitleBarDraggableArea(pos) {
		t.Fatalf("hidden button must not block dragging")
	}

	d.items[closeItem].hidden = false
	d.items[closeItem].disabled = true
	if _, hit := c.IsInSystemButtons(pos); hit {
		t.Fatalf("disabled button must not be hit")
	}

	delete(d.items, closeItem)
	if _, hit := c.IsInSystemButtons(pos); hit {
		t.Fatalf("vanished button must not be hit")
	}
	if !c.IsInTitleBarDraggableArea(pos) {
		t.Fatalf("vanished button must not block dragging")
	}
}

func TestSetSystemButton_SamePairTwice(t *testing.T) {
	c, _, _ := newScenario(t)
	if c.SetSystemButton(Close, closeItem) {
		t.Fatalf("second registration of the same pair must fail")
	}
	if got := c.SystemButtonItem(Close); got != closeItem {
		t.Fatalf("registry changed: %v", got)
	}
}

func TestSetSystemButton_RejectsUnknown(t *testing.T) {
	c := New(nil)
	if c.SetSystemButton(Unknown, closeItem) {
		t.Fatalf("Unknown must be rejected")
	}
	if c.SetSystemButton(SystemButton(42), closeItem) {
		t.Fatalf("out of range role must be rejected")
	}
}

func TestSetTitleBar(t *testing.T) {
	c := New(nil)
	if c.SetTitleBar(0) {
		t.Fatalf("zero item must be rejected")
	}
	if !c.SetTitleBar(titleItem) {
		t.Fatalf("first set must succeed")
	}
	if c.SetTitleBar(titleItem) {
		t.Fatalf("same item must be a no-op")
	}
	if !c.SetTitleBar(searchItem) || c.TitleBar() != searchItem {
		t.Fatalf("replacement must succeed")
	}
}

func TestIsInTitleBarDraggableArea_NoTitleBar(t *testing.T) {
	d := newFakeDelegate()
	c := New(nil)
	c.Setup("host", d)
	for _, p := range []platform.Point{{X: 0, Y: 0}, {X: 400, Y: 16}, {X: 799, Y: 599}} {
		if c.IsInTitleBarDraggableArea(p) {
			t.Fatalf("expected false without a title bar at %v", p)
		}
	}
}

func TestIsInTitleBarDraggableArea_TitleBarOutsideWindow(t *testing.T) {
	c, d, _ := newScenario(t)
	d.items[titleItem].rect = platform.Rect{X: 900, Y: 0, Width: 100, Height: 32}
	for _, p := range []platform.Point{{X: 950, Y: 16}, {X: 400, Y: 16}} {
		if c.IsInTitleBarDraggableArea(p) {
			t.Fatalf("expected false for title bar outside window at %v", p)
		}
	}
}

func TestIsInTitleBarDraggableArea_HiddenOrDisabledTitleBar(t *testing.T) {
	c, d, _ := newScenario(t)
	pos := platform.Point{X: 400, Y: 16}
	d.items[titleItem].hidden = true
	if c.IsInTitleBarDraggableArea(pos) {
		t.Fatalf("hidden title bar must not be draggable")
	}
	d.items[titleItem].hidden = false
	d.items[titleItem].disabled = true
	if c.IsInTitleBarDraggableArea(pos) {
		t.Fatalf("disabled title bar must not be draggable")
	}
}

func TestIsInTitleBarDraggableArea_DetachedWindow(t *testing.T) {
	c, _, _ := newScenario(t)
	c.SetEnabled(false)
	if c.IsInTitleBarDraggableArea(platform.Point{X: 400, Y: 16}) {
		t.Fatalf("detached window has no drag area")
	}
}

func TestSetHitTestVisible_ToggleRestores(t *testing.T) {
	c, d, _ := newScenario(t)
	d.add(searchItem, platform.Rect{X: 300, Y: 4, Width: 200, Height: 24})
	pos := platform.Point{X: 400, Y: 16}

	before := c.IsInTitleBarDraggableArea(pos)
	if !c.SetHitTestVisible(searchItem, true) {
		t.Fatalf("SetHitTestVisible(true) failed")
	}
	if c.IsInTitleBarDraggableArea(pos) {
		t.Fatalf("override must exclude its area")
	}
	if !c.SetHitTestVisible(searchItem, true) {
		t.Fatalf("duplicate add must succeed")
	}
	if !c.SetHitTestVisible(searchItem, false) {
		t.Fatalf("SetHitTestVisible(false) failed")
	}
	if got := c.IsInTitleBarDraggableArea(pos); got != before {
		t.Fatalf("expected %v after toggle, got %v", before, got)
	}
	if !c.SetHitTestVisible(searchItem, false) {
		t.Fatalf("removing a non-member must succeed")
	}
	if c.SetHitTestVisible(0, true) {
		t.Fatalf("zero item must be rejected")
	}
}

func TestSetHitTestVisible_HiddenOverrideDoesNotExclude(t *testing.T) {
	c, d, _ := newScenario(t)
	d.add(searchItem, platform.Rect{X: 300, Y: 4, Width: 200, Height: 24}).hidden = true
	c.SetHitTestVisible(searchItem, true)
	if !c.IsInTitleBarDraggableArea(platform.Point{X: 400, Y: 16}) {
		t.Fatalf("hidden override must not exclude")
	}
}

func TestSetWindowAttribute_NotifiesOnce(t *testing.T) {
	c, _, p := newScenario(t)

	c.SetWindowAttribute("snap-layout", true)
	c.SetWindowAttribute("snap-layout", true)

	got := p.attributeHooks()
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Key != "snap-layout" || got[0].New != true || got[0].Old != nil {
		t.Fatalf("unexpected notification %+v", got[0])
	}
	if c.WindowAttribute("snap-layout") != true {
		t.Fatalf("value not stored")
	}

	c.SetWindowAttribute("snap-layout", false)
	got = p.attributeHooks()
	if len(got) != 2 || got[1].Old != true || got[1].New != false {
		t.Fatalf("unexpected notifications %+v", got)
	}
}

func TestSetWindowAttribute_ComparesByValue(t *testing.T) {
	c, _, p := newScenario(t)
	c.SetWindowAttribute("margins", []int{1, 2})
	c.SetWindowAttribute("margins", []int{1, 2})
	if n := len(p.attributeHooks()); n != 1 {
		t.Fatalf("expected 1 notification, got %d", n)
	}
}

func TestSetEnabled_FiresOnceWithNilPrevious(t *testing.T) {
	d := newFakeDelegate()
	p := &recordingPlatform{}
	c := New(p)
	c.Setup("host", d)

	if len(p.handles) != 1 {
		t.Fatalf("expected one handle change after setup, got %d", len(p.handles))
	}
	if p.handles[0].prev != nil || p.handles[0].destroyed {
		t.Fatalf("unexpected event %+v", p.handles[0])
	}

	c.SetEnabled(true)
	if len(p.handles) != 1 {
		t.Fatalf("SetEnabled(true) twice must not notify, got %d", len(p.handles))
	}
}

func TestSetEnabled_DisableDetaches(t *testing.T) {
	c, d, p := newScenario(t)
	c.SetEnabled(false)
	if c.Window() != nil {
		t.Fatalf("window must be detached")
	}
	if len(p.handles) != 2 {
		t.Fatalf("expected 2 events, got %d", len(p.handles))
	}
	if p.handles[1].prev != Window(d.window) || p.handles[1].destroyed {
		t.Fatalf("unexpected detach event %+v", p.handles[1])
	}

	c.SetEnabled(false)
	if len(p.handles) != 2 {
		t.Fatalf("disabling twice must not notify")
	}
}

func TestSetEnabled_NoWindowAvailable(t *testing.T) {
	d := newFakeDelegate()
	d.window = nil
	p := &recordingPlatform{}
	c := New(p)
	c.Setup("host", d)
	if len(p.handles) != 0 {
		t.Fatalf("no window means no notification, got %d", len(p.handles))
	}
	if !c.Enabled() {
		t.Fatalf("context must be enabled")
	}
}

func TestSetEnabled_BeforeSetupStillAttaches(t *testing.T) {
	d := newFakeDelegate()
	p := &recordingPlatform{}
	c := New(p)

	c.SetEnabled(true)
	if c.Enabled() {
		t.Fatalf("context without a delegate must stay disabled")
	}

	c.Setup("host", d)
	if c.Window() == nil {
		t.Fatalf("window not attached after Setup")
	}
	if len(p.handles) != 1 || p.handles[0].prev != nil || p.handles[0].destroyed {
		t.Fatalf("expected one attach with nil previous, got %+v", p.handles)
	}
}

func TestSetup_OnlyOnce(t *testing.T) {
	d := newFakeDelegate()
	p := &recordingPlatform{}
	c := New(p)

	c.Setup(nil, d)
	c.Setup("host", nil)
	if c.Enabled() || c.Host() != nil {
		t.Fatalf("setup with missing arguments must be a no-op")
	}

	c.Setup("host", d)
	c.Setup("other", newFakeDelegate())
	if c.Host() != "host" || c.Delegate() != Delegate(d) {
		t.Fatalf("second setup must be ignored")
	}
	if len(p.handles) != 1 {
		t.Fatalf("expected exactly one handle change, got %d", len(p.handles))
	}
}

func TestNotifyWinIDChange(t *testing.T) {
	c, d, p := newScenario(t)
	first := d.window

	c.NotifyWinIDChange()
	if len(p.handles) != 1 {
		t.Fatalf("unchanged handle must not notify")
	}

	first.dead = true
	d.window = &fakeWindow{id: 2, size: first.size}
	c.NotifyWinIDChange()
	if len(p.handles) != 2 {
		t.Fatalf("expected a replacement event")
	}
	ev := p.handles[1]
	if ev.prev != Window(first) || !ev.destroyed {
		t.Fatalf("unexpected replacement event %+v", ev)
	}
	if c.Window().ID() != 2 {
		t.Fatalf("new window not bound")
	}

	d.window = nil
	c.NotifyWinIDChange()
	if len(p.handles) != 3 || p.handles[2].destroyed {
		t.Fatalf("detach of a live window must not report destroyed: %+v", p.handles)
	}
	if c.Window() != nil {
		t.Fatalf("window must be cleared")
	}
}

func TestNotifyWinIDChange_IgnoredWhenDisabled(t *testing.T) {
	c, d, p := newScenario(t)
	c.SetEnabled(false)
	d.window = &fakeWindow{id: 9}
	c.NotifyWinIDChange()
	if len(p.handles) != 2 {
		t.Fatalf("disabled context must ignore handle changes")
	}
}

func TestCentralizeHook(t *testing.T) {
	c, d, _ := newScenario(t)
	d.window.screen = platform.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	c.Invoke(Centralize{})

	want := platform.Point{X: 1920 + (1920-800)/2, Y: (1080 - 600) / 2}
	if d.window.pos != want {
		t.Fatalf("expected %v, got %v", want, d.window.pos)
	}
}

func TestCentralizeHook_NoWindow(t *testing.T) {
	c, d, _ := newScenario(t)
	w := d.window
	c.SetEnabled(false)
	c.Invoke(Centralize{})
	if w.moves != 0 {
		t.Fatalf("detached context must not move windows")
	}
}

func TestRaiseWindowHook(t *testing.T) {
	c, d, _ := newScenario(t)
	d.state = platform.StateMinimized | platform.StateMaximized
	c.Invoke(RaiseWindow{})

	if len(d.states) != 1 || d.states[0] != platform.StateMaximized {
		t.Fatalf("minimized flag not cleared: %v", d.states)
	}
	if d.raised != 1 {
		t.Fatalf("expected one raise, got %d", d.raised)
	}

	c.Invoke(RaiseWindow{})
	if len(d.states) != 1 {
		t.Fatalf("non-minimized window must not have its state changed")
	}
	if d.raised != 2 {
		t.Fatalf("expected two raises, got %d", d.raised)
	}
}

func TestDefaultColorsHook(t *testing.T) {
	c := New(nil)
	m := map[string]color.RGBA{}
	c.Invoke(DefaultColors{Colors: m})
	if len(m) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(m))
	}
	if m[ColorActiveLight] != (color.RGBA{R: 210, G: 233, B: 189, A: 226}) {
		t.Fatalf("unexpected activeLight %v", m[ColorActiveLight])
	}
	if m[ColorInactiveDark] != (color.RGBA{R: 240, G: 240, B: 250, A: 255}) {
		t.Fatalf("unexpected inactiveDark %v", m[ColorInactiveDark])
	}

	m2 := map[string]color.RGBA{"stale": {}}
	c.Invoke(DefaultColors{Colors: m2})
	if _, ok := m2["stale"]; ok || len(m2) != 4 {
		t.Fatalf("prior contents must be cleared: %v", m2)
	}
	for k, v := range m {
		if m2[k] != v {
			t.Fatalf("palette must be deterministic for %s", k)
		}
	}
}

func TestShowSystemMenuAndButtonArea(t *testing.T) {
	c, _, p := newScenario(t)
	c.ShowSystemMenu(platform.Point{X: 10, Y: 20})
	area := platform.Rect{X: 8, Y: 8, Width: 60, Height: 16}
	c.SetSystemButtonArea(area)

	if len(p.hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(p.hooks))
	}
	if m, ok := p.hooks[0].(ShowSystemMenu); !ok || m.Pos != (platform.Point{X: 10, Y: 20}) {
		t.Fatalf("unexpected menu hook %#v", p.hooks[0])
	}
	if _, ok := p.hooks[1].(SystemButtonAreaChanged); !ok {
		t.Fatalf("unexpected area hook %#v", p.hooks[1])
	}
	if c.SystemButtonArea() != area {
		t.Fatalf("area not stored")
	}
}

type privateHook struct{}

func (privateHook) HookID() HookID { return UserHook + 1 }

func TestInvoke_UnknownHookIgnored(t *testing.T) {
	c, d, _ := newScenario(t)
	c.Invoke(privateHook{})
	c.Invoke(nil)
	if d.raised != 0 || d.window.moves != 0 {
		t.Fatalf("unknown hooks must have no effect")
	}
}

func TestSystemButtonNames(t *testing.T) {
	for _, b := range SystemButtons() {
		got, ok := ParseSystemButton(b.String())
		if !ok || got != b {
			t.Fatalf("round trip failed for %v", b)
		}
	}
	if _, ok := ParseSystemButton("unknown"); ok {
		t.Fatalf("unknown must not parse")
	}
}

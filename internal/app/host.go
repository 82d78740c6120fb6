package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/handles"
	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/pointer"
)

// Host runs the editor in a terminal. Cells map 1:1 to document
// coordinates; anchors render as solid dots, control points as rings.
// It exists to exercise the interaction core end to end, not to be a
// faithful SVG renderer.
type Host struct {
	app    *App
	screen tcell.Screen

	// buttons is the previous mouse button mask, for edge detection.
	buttons tcell.ButtonMask

	// targets maps cells to hit-test results, rebuilt each frame.
	targets map[[2]int]*pointer.Target

	quit bool
}

// NewHost initializes the terminal.
func NewHost(a *App) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	return &Host{
		app:     a,
		screen:  screen,
		targets: make(map[[2]int]*pointer.Target),
	}, nil
}

// Run drives the event loop until quit.
func (h *Host) Run() error {
	defer h.screen.Fini()

	for !h.quit {
		h.render()
		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventKey:
			h.handleKey(ev)
		case *tcell.EventMouse:
			h.handleMouse(ev)
		case *tcell.EventResize:
			h.screen.Sync()
		case *tcell.EventFocus:
			if !ev.Focused {
				// A click sequence cannot span a focus loss.
				h.app.Router.ResetClicks()
			}
		case nil:
			return nil
		}
	}
	return nil
}

// Close stops the event loop from another goroutine.
func (h *Host) Close() {
	h.quit = true
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
		h.quit = true
		return
	}
	kev, ok := translateKey(ev)
	if !ok {
		return
	}
	h.app.Router.HandleKey(kev, false)
}

// translateKey maps a tcell key event onto the editor's key model.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	var mods key.Modifier
	tm := ev.Modifiers()
	if tm&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if tm&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return key.NewKeyEvent(key.KeySpace, mods), true
		}
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewKeyEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewKeyEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewKeyEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewKeyEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewKeyEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewKeyEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewKeyEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewKeyEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewKeyEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewKeyEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewKeyEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewKeyEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewKeyEvent(key.KeyRight, mods), true
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return key.NewKeyEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods), true
		}
	}
	return key.Event{}, false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()
	now := time.Now()

	base := pointer.Event{
		Point:     geom.Pt(float64(x), float64(y)),
		Device:    pointer.DeviceMouse,
		Modifiers: translateMouseMods(ev.Modifiers()),
		Target:    h.targets[[2]int{x, y}],
		Time:      now,
	}

	if btns&(tcell.WheelUp|tcell.WheelDown) != 0 {
		wev := base
		wev.Phase = pointer.PhaseWheel
		if btns&tcell.WheelUp != 0 {
			wev.WheelDelta = geom.Pt(0, -1)
		} else {
			wev.WheelDelta = geom.Pt(0, 1)
		}
		h.app.Router.HandlePointer(wev)
		return
	}

	pressed := btns &^ h.buttons
	released := h.buttons &^ btns
	h.buttons = btns

	switch {
	case pressed&tcell.Button1 != 0:
		base.Phase, base.Button = pointer.PhaseDown, pointer.ButtonLeft
	case pressed&tcell.Button2 != 0:
		base.Phase, base.Button = pointer.PhaseDown, pointer.ButtonRight
	case released&tcell.Button1 != 0:
		base.Phase, base.Button = pointer.PhaseUp, pointer.ButtonLeft
	case released&tcell.Button2 != 0:
		base.Phase, base.Button = pointer.PhaseUp, pointer.ButtonRight
	default:
		base.Phase = pointer.PhaseMove
		if btns&tcell.Button1 != 0 {
			base.Button = pointer.ButtonLeft
		}
	}

	h.app.Router.HandlePointer(base)
}

func translateMouseMods(tm tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if tm&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}

// render redraws the document preview and rebuilds the hit-test map.
func (h *Host) render() {
	h.screen.Clear()
	h.targets = make(map[[2]int]*pointer.Target)

	selected := make(map[string]bool)
	for _, id := range h.app.Store.SelectedCommands() {
		selected[id] = true
	}

	for _, p := range h.app.Store.Paths() {
		style := strokeStyle(p.Style.Stroke)
		for _, sp := range p.SubPaths {
			for _, cmd := range sp.Commands {
				if !cmd.HasAnchor() {
					continue
				}
				ax, ay := int(cmd.Anchor().X), int(cmd.Anchor().Y)
				h.put(ax, ay, '●', style, &pointer.Target{
					ElementType: pointer.ElementPath,
					ElementID:   p.ID,
					CommandID:   cmd.ID,
				})

				if !selected[cmd.ID] {
					continue
				}
				// Control points show only for selected commands.
				for _, f := range []handles.Field{handles.FieldControl1, handles.FieldControl2} {
					hd := handles.Handle{CommandID: cmd.ID, Field: f}
					pos, ok := hd.PosIn(h.app.Store)
					if !ok {
						continue
					}
					h.put(int(pos.X), int(pos.Y), '○', style.Dim(true), &pointer.Target{
						ElementType:  pointer.ElementPath,
						ElementID:    p.ID,
						CommandID:    cmd.ID,
						ControlPoint: true,
						Field:        f,
					})
				}
			}
		}
	}

	h.drawStatus()
	h.screen.Show()
}

func (h *Host) put(x, y int, r rune, style tcell.Style, target *pointer.Target) {
	w, ht := h.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= ht-1 {
		return
	}
	h.screen.SetContent(x, y, r, nil, style)
	h.targets[[2]int{x, y}] = target
}

// strokeStyle converts a stroke color to a cell style.
func strokeStyle(stroke string) tcell.Style {
	c, err := colorful.Hex(stroke)
	if err != nil {
		return tcell.StyleDefault
	}
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (h *Host) drawStatus() {
	w, ht := h.screen.Size()
	y := ht - 1

	drag := ""
	if h.app.Session.IsDragging() {
		drag = fmt.Sprintf("  drag:%s (%s)", h.app.Session.CommandID(), h.app.Session.PairType())
	}
	grid := h.app.Store.Grid()
	gridNote := "off"
	if grid.Enabled {
		gridNote = fmt.Sprintf("%.0f", grid.Size)
	}
	line := fmt.Sprintf(" %s  sel:%d  grid:%s%s  (ctrl-q quits)",
		h.app.Modes.Current(), len(h.app.Store.SelectedCommands()), gridNote, drag)

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		h.screen.SetContent(x, y, r, nil, style)
	}
}

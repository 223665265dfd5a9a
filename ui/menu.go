package ui

import (
	"image/color"

	"github.com/pkg/errors"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"shaderbox/hal"
	"shaderbox/input"
)

// Magenta background, cyan text; the selected row swaps them.
var (
	colorBackground = color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	colorItem       = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
)

const menuMargin = 4

// Buttons registers button press handlers.
type Buttons interface {
	OnPress(b input.Button, fn func()) (remove func())
}

// Menu lists shader names. Up and Down move the selection and Centre
// launches the selected entry.
type Menu struct {
	title   string
	items   []string
	buttons Buttons
	launch  func(name string) error
	logger  hal.Logger

	fb   hal.Framebuffer
	disp *FramebufferDisplay
	font tinyfont.Fonter

	selected int
	scroll   int
	unbind   []func()
}

type MenuConfig struct {
	Title       string
	Items       []string
	Framebuffer hal.Framebuffer
	Buttons     Buttons
	Logger      hal.Logger
	// Launch runs when Centre is pressed on an entry.
	Launch func(name string) error
}

func NewMenu(cfg MenuConfig) (*Menu, error) {
	if cfg.Framebuffer == nil {
		return nil, errors.New("ui: no framebuffer")
	}
	if cfg.Buttons == nil {
		return nil, errors.New("ui: no buttons")
	}
	items := append([]string(nil), cfg.Items...)
	return &Menu{
		title:   cfg.Title,
		items:   items,
		buttons: cfg.Buttons,
		launch:  cfg.Launch,
		logger:  cfg.Logger,
		fb:      cfg.Framebuffer,
		disp:    NewFramebufferDisplay(cfg.Framebuffer),
		font:    &proggy.TinySZ8pt7b,
	}, nil
}

// Selected returns the highlighted entry, or "" for an empty menu.
func (m *Menu) Selected() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.selected]
}

func (m *Menu) Activate() error {
	m.unbind = append(m.unbind,
		m.buttons.OnPress(input.ButtonUp, func() { m.move(-1) }),
		m.buttons.OnPress(input.ButtonDown, func() { m.move(1) }),
		m.buttons.OnPress(input.ButtonCentre, m.choose),
	)
	if err := m.Draw(); err != nil {
		m.Deactivate()
		return err
	}
	return nil
}

func (m *Menu) Deactivate() {
	for _, remove := range m.unbind {
		remove()
	}
	m.unbind = nil
}

func (m *Menu) move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
	m.logErr(m.Draw())
}

func (m *Menu) choose() {
	name := m.Selected()
	if name == "" || m.launch == nil {
		return
	}
	m.logErr(m.launch(name))
}

func (m *Menu) logErr(err error) {
	if err != nil && m.logger != nil {
		m.logger.WriteLineString("ui: " + err.Error())
	}
}

func (m *Menu) lineHeight() int {
	h := int(m.font.GetYAdvance())
	if h <= 0 {
		h = 10
	}
	return h
}

// rows returns how many entries fit below the title.
func (m *Menu) rows() int {
	lh := m.lineHeight()
	n := (m.fb.Height() - 2*menuMargin - lh - menuMargin) / lh
	if n < 1 {
		n = 1
	}
	return n
}

// Draw repaints the whole menu and presents it. A framebuffer without a
// panel behind it is drawn into all the same.
func (m *Menu) Draw() error {
	w := int16(m.fb.Width())
	h := int16(m.fb.Height())
	lh := m.lineHeight()

	m.disp.FillRectangle(0, 0, w, h, colorBackground)

	y := menuMargin + lh
	tinyfont.WriteLine(m.disp, m.font, menuMargin, int16(y), m.title, colorItem)
	m.disp.FillRectangle(0, int16(y+menuMargin/2), w, 1, colorItem)
	y += menuMargin

	rows := m.rows()
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+rows {
		m.scroll = m.selected - rows + 1
	}

	for i := m.scroll; i < len(m.items) && i < m.scroll+rows; i++ {
		top := y
		y += lh
		fg := colorItem
		if i == m.selected {
			m.disp.FillRectangle(0, int16(top+2), w, int16(lh), colorItem)
			fg = colorBackground
		}
		tinyfont.WriteLine(m.disp, m.font, menuMargin, int16(y), m.items[i], fg)
	}

	if err := m.disp.Display(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		return err
	}
	return nil
}

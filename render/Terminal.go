package render

import (
	"SoloPong/core"
	"fmt"
	"image"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
)

const BlockSymbol = 0x2588 // 方塊符號
const eventBufferSize = 32

// TerminalRenderer 在終端機上畫遊戲，把邏輯畫面(像素)等比例縮放到終端機的格子上
type TerminalRenderer struct {
	screen  tcell.Screen
	fs      afero.Fs
	logical core.Screen
	events  chan core.Event
}

// NewTerminalRenderer screen 會在這裡 Init，Close 時 Fini
func NewTerminalRenderer(screen tcell.Screen, fs afero.Fs, logical core.Screen) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorWhite).
		Foreground(tcell.ColorBlack)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	t := &TerminalRenderer{
		screen:  screen,
		fs:      fs,
		logical: logical,
		events:  make(chan core.Event, eventBufferSize),
	}
	t.initUserInput()
	return t, nil
}

// initUserInput 建立一個goroutine去監聽鍵盤的事件，screen Fini 之後 PollEvent 回傳 nil 就結束
func (t *TerminalRenderer) initUserInput() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			var e core.Event
			switch ev := ev.(type) {
			case *tcell.EventKey:
				e = translateKey(ev)
			case *tcell.EventResize:
				t.screen.Sync()
				e = core.Event{Type: core.EventOther}
			default:
				e = core.Event{Type: core.EventOther}
			}
			//buffer 滿了就丟掉
			select {
			case t.events <- e:
			default:
			}
		}
	}()
}

func translateKey(ev *tcell.EventKey) core.Event {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.KeyDown(core.KeyLeft)
	case tcell.KeyRight:
		return core.KeyDown(core.KeyRight)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.Event{Type: core.EventQuit}
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return core.Event{Type: core.EventQuit}
		}
	}
	return core.KeyDown(core.KeyUnknown)
}

func (t *TerminalRenderer) Name() string {
	return core.RendererTerminal
}

func (t *TerminalRenderer) LoadSprite(file string) (core.Sprite, error) {
	return LoadBitmap(t.fs, file)
}

func (t *TerminalRenderer) Clear() {
	t.screen.Clear()
}

func (t *TerminalRenderer) Present() {
	t.screen.Show()
}

func (t *TerminalRenderer) PollEvents() []core.Event {
	var events []core.Event
	for {
		select {
		case ev := <-t.events:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Draw 把圖片取樣到它覆蓋的每一格，透明的像素不畫
func (t *TerminalRenderer) Draw(sprite core.Sprite, x, y, width, height int) {
	img, ok := sprite.(image.Image)
	if !ok || img == nil {
		return
	}
	cols, rows := t.screen.Size()
	col0, col1 := t.span(x, width, t.logical.Width, cols)
	row0, row1 := t.span(y, height, t.logical.Height, rows)

	b := img.Bounds()
	for r := row0; r < row1; r++ {
		for c := col0; c < col1; c++ {
			px := b.Min.X + (c-col0)*b.Dx()/(col1-col0)
			py := b.Min.Y + (r-row0)*b.Dy()/(row1-row0)
			color, visible := colorful.MakeColor(img.At(px, py))
			if !visible {
				continue
			}
			red, green, blue := color.RGB255()
			style := tcell.StyleDefault.
				Background(tcell.ColorWhite).
				Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
			t.screen.SetContent(c, r, BlockSymbol, nil, style)
		}
	}
}

// span 把邏輯座標 [pos, pos+size) 換成格子範圍，至少佔一格
func (t *TerminalRenderer) span(pos, size, logical, cells int) (int, int) {
	start := pos * cells / logical
	end := (pos + size) * cells / logical
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (t *TerminalRenderer) Close() error {
	t.screen.Fini()
	return nil
}

package window

import (
	"SoloPong/core"
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// SdlRenderer 用 SDL 開一個固定大小的視窗，必須在 main thread 上使用
type SdlRenderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	textures []*sdl.Texture
}

func NewSdlRenderer(title string, screen core.Screen) (*SdlRenderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(screen.Width), int32(screen.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &SdlRenderer{window: window, renderer: renderer}, nil
}

func (s *SdlRenderer) Name() string {
	return core.RendererSdl
}

func (s *SdlRenderer) LoadSprite(file string) (core.Sprite, error) {
	texture, err := img.LoadTexture(s.renderer, file)
	if err != nil {
		return nil, err
	}
	s.textures = append(s.textures, texture)
	return texture, nil
}

func (s *SdlRenderer) Clear() {
	s.renderer.SetDrawColor(255, 255, 255, 255)
	s.renderer.Clear()
}

func (s *SdlRenderer) Draw(sprite core.Sprite, x, y, width, height int) {
	texture, ok := sprite.(*sdl.Texture)
	if !ok || texture == nil {
		return
	}
	dst := sdl.Rect{X: int32(x), Y: int32(y), W: int32(width), H: int32(height)}
	s.renderer.Copy(texture, nil, &dst)
}

func (s *SdlRenderer) Present() {
	s.renderer.Present()
}

func (s *SdlRenderer) PollEvents() []core.Event {
	var events []core.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, translateSdlEvent(event))
	}
	return events
}

func translateSdlEvent(event sdl.Event) core.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return core.Event{Type: core.EventQuit}
	case *sdl.KeyboardEvent:
		//放開按鍵也算一個事件，會蓋掉前一個按下
		if e.State != sdl.PRESSED {
			return core.Event{Type: core.EventOther}
		}
		switch e.Keysym.Sym {
		case sdl.K_LEFT:
			return core.KeyDown(core.KeyLeft)
		case sdl.K_RIGHT:
			return core.KeyDown(core.KeyRight)
		}
		return core.KeyDown(core.KeyUnknown)
	}
	return core.Event{Type: core.EventOther}
}

func (s *SdlRenderer) Close() error {
	var errs []error
	for _, texture := range s.textures {
		errs = append(errs, texture.Destroy())
	}
	errs = append(errs, s.renderer.Destroy(), s.window.Destroy())
	sdl.Quit()
	return errors.Join(errs...)
}

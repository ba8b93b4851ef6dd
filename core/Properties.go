package core

import (
	"SoloPong/logger"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const RendererSdl = "sdl"
const RendererTerminal = "terminal"

// Settings 遊戲啟動時讀入的設定，遊戲期間不會再改變
type Settings struct {
	Screen       Screen
	Title        string
	FrameDelay   time.Duration
	Velocity     int
	BallSprite   string
	PaddleSprite string
	BallWidth    int
	BallHeight   int
	PaddleWidth  int
	PaddleHeight int
	Renderer     string
}

var defaultProperties = map[string]interface{}{
	"SCREEN_WIDTH":  640,
	"SCREEN_HEIGHT": 480,
	"WINDOW_TITLE":  "Pong",
	"FRAME_DELAY":   "100ms",
	"VELOCITY":      DefaultVelocity,
	"BALL_SPRITE":   "dot.bmp",
	"PADDLE_SPRITE": "paddle.bmp",
	"BALL_WIDTH":    20,
	"BALL_HEIGHT":   20,
	"PADDLE_WIDTH":  100,
	"PADDLE_HEIGHT": 16,
	"RENDERER":      RendererSdl,
}

func DefaultSettings() Settings {
	settings, _ := settingsFrom(newPropertiesViper(afero.NewMemMapFs()))
	return settings
}

func PropertiesPath(env string) string {
	return filepath.Join("properties", fmt.Sprintf("%s.properties", env))
}

// ReadProperties 讀取 properties/<env>.properties，找不到檔案時使用預設值
func ReadProperties(fs afero.Fs, env string) (Settings, error) {
	v := newPropertiesViper(fs)
	path := PropertiesPath(env)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Settings{}, fmt.Errorf("check config file %s: %w", path, err)
	}

	if exists {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigNotFoundMsg, path))
	}

	return settingsFrom(v)
}

func newPropertiesViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("properties")
	for key, value := range defaultProperties {
		v.SetDefault(key, value)
	}
	return v
}

func settingsFrom(v *viper.Viper) (Settings, error) {
	frameDelay, err := cast.ToDurationE(v.Get("FRAME_DELAY"))
	if err != nil {
		return Settings{}, fmt.Errorf("FRAME_DELAY: %w", err)
	}

	settings := Settings{
		Screen: Screen{
			Width:  cast.ToInt(v.Get("SCREEN_WIDTH")),
			Height: cast.ToInt(v.Get("SCREEN_HEIGHT")),
		},
		Title:        cast.ToString(v.Get("WINDOW_TITLE")),
		FrameDelay:   frameDelay,
		Velocity:     cast.ToInt(v.Get("VELOCITY")),
		BallSprite:   cast.ToString(v.Get("BALL_SPRITE")),
		PaddleSprite: cast.ToString(v.Get("PADDLE_SPRITE")),
		BallWidth:    cast.ToInt(v.Get("BALL_WIDTH")),
		BallHeight:   cast.ToInt(v.Get("BALL_HEIGHT")),
		PaddleWidth:  cast.ToInt(v.Get("PADDLE_WIDTH")),
		PaddleHeight: cast.ToInt(v.Get("PADDLE_HEIGHT")),
		Renderer:     cast.ToString(v.Get("RENDERER")),
	}
	return settings, settings.Validate()
}

func (s Settings) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid screen size %dx%d", s.Screen.Width, s.Screen.Height))
	}
	if s.BallWidth <= 0 || s.BallHeight <= 0 {
		errs = append(errs, fmt.Errorf("invalid ball size %dx%d", s.BallWidth, s.BallHeight))
	}
	if s.PaddleWidth <= 0 || s.PaddleHeight <= 0 || s.PaddleWidth > s.Screen.Width {
		errs = append(errs, fmt.Errorf("invalid paddle size %dx%d", s.PaddleWidth, s.PaddleHeight))
	}
	if s.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("invalid velocity %d", s.Velocity))
	}
	if s.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("invalid frame delay %s", s.FrameDelay))
	}
	if s.Renderer != RendererSdl && s.Renderer != RendererTerminal {
		errs = append(errs, fmt.Errorf("unknown renderer %q", s.Renderer))
	}
	return errors.Join(errs...)
}

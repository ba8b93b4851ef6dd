package main

import (
	"SoloPong/core"
	"SoloPong/logger"
	"SoloPong/render"
	"SoloPong/window"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const ExitStartupFailed = 1

func init() {
	// SDL 的視窗與事件都必須在 main thread 上處理
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs()))
}

func run(args []string, fs afero.Fs) int {
	settings, err := loadSettings(args, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ExitStartupFailed
	}

	//終端機模式下不能把紀錄印到畫面上
	var echo io.Writer = os.Stdout
	if settings.Renderer == core.RendererTerminal {
		echo = nil
	}
	if err := logger.Log.Init(fs, uuid.New().String(), echo); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ExitStartupFailed
	}
	defer logger.Log.Close()

	renderer, err := newRenderer(settings, fs)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.StartupFailMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ExitStartupFailed
	}
	logger.Log.Info(fmt.Sprintf(logger.RendererInitMsg, renderer.Name()))
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.RendererCloseFailMsg, err))
		}
	}()

	game, err := core.NewGame(renderer, settings)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.StartupFailMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ExitStartupFailed
	}

	return core.ExitCode(game.Run())
}

func loadSettings(args []string, fs afero.Fs) (core.Settings, error) {
	flags := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	env := flags.String("env", "local", "settings file under properties/ to use")
	rendererName := flags.String("renderer", "", "renderer to draw with: sdl or terminal")
	if err := flags.Parse(args); err != nil {
		return core.Settings{}, err
	}

	settings, err := core.ReadProperties(fs, *env)
	if err != nil {
		return core.Settings{}, err
	}
	if flags.Changed("renderer") {
		settings.Renderer = *rendererName
	}
	if err := settings.Validate(); err != nil {
		return core.Settings{}, err
	}
	logger.Log.Debug(fmt.Sprintf(logger.SettingsLoadedMsg, core.PropertiesPath(*env),
		settings.Screen.Width, settings.Screen.Height, settings.FrameDelay, settings.Velocity))
	return settings, nil
}

func newRenderer(settings core.Settings, fs afero.Fs) (core.Renderer, error) {
	switch settings.Renderer {
	case core.RendererSdl:
		r, err := window.NewSdlRenderer(settings.Title, settings.Screen)
		if err != nil {
			return nil, err
		}
		return r, nil
	case core.RendererTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create terminal screen: %w", err)
		}
		r, err := render.NewTerminalRenderer(screen, fs, settings.Screen)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", settings.Renderer)
	}
}

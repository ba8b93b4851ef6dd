package core

import (
	"SoloPong/logger"
	"fmt"
	"time"
)

type State int

const (
	StateRunning State = iota
	StateTerminated
)

type Outcome int

const (
	OutcomeNone       Outcome = iota
	OutcomeQuit               // 玩家關閉視窗
	OutcomeBallMissed         // 球從底部掉出去
)

const ExitQuit = 0
const ExitBallMissed = -1

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeBallMissed:
		return "ball missed"
	default:
		return "none"
	}
}

// ExitCode 遊戲結果對應的程式結束代碼
func ExitCode(outcome Outcome) int {
	if outcome == OutcomeBallMissed {
		return ExitBallMissed
	}
	return ExitQuit
}

// Game 遊戲迴圈，持有繪圖環境與兩個遊戲物件
type Game struct {
	screen     Screen
	renderer   Renderer
	ball       *Ball
	paddle     *Paddle
	frameDelay time.Duration
	sleep      func(time.Duration)

	state   State
	outcome Outcome
	frame   int
}

// NewGame 載入圖片並建立球與球拍，任何圖片載入失敗都直接回傳錯誤
func NewGame(renderer Renderer, settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	ballSprite, err := loadSprite(renderer, settings.BallSprite)
	if err != nil {
		return nil, err
	}
	paddleSprite, err := loadSprite(renderer, settings.PaddleSprite)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:     settings.Screen,
		renderer:   renderer,
		ball:       NewBall(ballSprite, settings.BallWidth, settings.BallHeight, settings.Velocity),
		paddle:     NewPaddle(paddleSprite, settings.PaddleWidth, settings.PaddleHeight, settings.Velocity, settings.Screen),
		frameDelay: settings.FrameDelay,
		sleep:      time.Sleep,
		state:      StateRunning,
	}
	return g, nil
}

func loadSprite(renderer Renderer, file string) (Sprite, error) {
	sprite, err := renderer.LoadSprite(file)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.AssetLoadFailMsg, file, err))
		return nil, fmt.Errorf("load sprite %s: %w", file, err)
	}
	logger.Log.Debug(fmt.Sprintf(logger.AssetLoadedMsg, file))
	return sprite, nil
}

func (g *Game) Ball() *Ball {
	return g.ball
}

func (g *Game) Paddle() *Paddle {
	return g.paddle
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Frame() int {
	return g.frame
}

// Run 一直跑到玩家離開或球掉出畫面為止
func (g *Game) Run() Outcome {
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, g.renderer.Name(), g.screen.Width, g.screen.Height))
	for g.state == StateRunning {
		g.Step()
	}
	return g.outcome
}

// Step 執行一幀：讀輸入、清畫面、移動、邊界、碰撞、顯示、等待
func (g *Game) Step() {
	if g.state != StateRunning {
		return
	}

	latest, quit := g.readInput()

	g.renderer.Clear()

	characters := []Character{g.ball, g.paddle}
	for _, c := range characters {
		c.Move(latest)
		c.Draw(g.renderer)
	}

	//球掉出畫面底部，遊戲立即結束
	if ApplyBoundary(&g.ball.GameObject, g.screen) {
		logger.Log.Info(fmt.Sprintf(logger.BallMissedMsg, g.frame, g.ball.X, g.ball.Y))
		g.terminate(OutcomeBallMissed)
		return
	}
	ApplyBoundary(&g.paddle.GameObject, g.screen)

	if ApplyCollision(&g.ball.GameObject, &g.paddle.GameObject, g.screen) {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, g.ball.X, g.ball.Y, g.paddle.X, g.paddle.Y))
	}

	g.renderer.Present()
	g.frame++
	g.sleep(g.frameDelay)

	if quit {
		logger.Log.Info(logger.PlayerQuitMsg)
		g.terminate(OutcomeQuit)
	}
}

// readInput 取出這一幀所有事件，只保留最後一個給球拍用
func (g *Game) readInput() (Event, bool) {
	latest := Event{Type: EventNone}
	quit := false
	for _, ev := range g.renderer.PollEvents() {
		if ev.IsQuit() {
			quit = true
		}
		latest = ev
	}
	return latest, quit
}

func (g *Game) terminate(outcome Outcome) {
	g.state = StateTerminated
	g.outcome = outcome
}

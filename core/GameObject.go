package core

const NameDot = "dot"       // 球的名稱標籤
const NamePaddle = "paddle" // 球拍的名稱標籤

const DefaultVelocity = 23 // 每幀移動的像素

// GameObject 畫面上可以繪製的物件(球或球拍)
type GameObject struct {
	Name          string
	X, Y          int
	Width, Height int
	DirX, DirY    int
	Velocity      int
	Sprite        Sprite
}

func (o *GameObject) Position() (int, int) {
	return o.X, o.Y
}

func (o *GameObject) Size() (int, int) {
	return o.Width, o.Height
}

func (o *GameObject) SetX(x int) {
	o.X = x
}

func (o *GameObject) SetY(y int) {
	o.Y = y
}

func (o *GameObject) ChangeDirectionX() {
	o.DirX *= -1
}

func (o *GameObject) ChangeDirectionY() {
	o.DirY *= -1
}

func (o *GameObject) Draw(canvas Canvas) {
	canvas.Draw(o.Sprite, o.X, o.Y, o.Width, o.Height)
}

// Character 球與球拍共同的能力
type Character interface {
	Object() *GameObject
	Move(ev Event)
	Draw(canvas Canvas)
}

type Ball struct {
	GameObject
}

// NewBall 球的起始位置與自身大小相同(左上角往內一個球身)
func NewBall(sprite Sprite, width, height, velocity int) *Ball {
	return &Ball{
		GameObject: GameObject{Name: NameDot, X: width, Y: height,
			Width: width, Height: height,
			DirX: 1, DirY: 1, Velocity: velocity, Sprite: sprite},
	}
}

func (b *Ball) Object() *GameObject {
	return &b.GameObject
}

// Move 球每一幀都會移動，不受輸入影響
func (b *Ball) Move(Event) {
	b.X += b.Velocity * b.DirX
	b.Y += b.Velocity * b.DirY
}

type Paddle struct {
	GameObject
}

// NewPaddle 球拍放在畫面底部正中間
func NewPaddle(sprite Sprite, width, height, velocity int, screen Screen) *Paddle {
	return &Paddle{
		GameObject: GameObject{Name: NamePaddle,
			X: screen.Width/2 - width/2, Y: screen.Height - height,
			Width: width, Height: height,
			DirX: 1, DirY: 1, Velocity: velocity, Sprite: sprite},
	}
}

func (p *Paddle) Object() *GameObject {
	return &p.GameObject
}

// Move 只看這一幀最後一個事件，不追蹤按鍵是否持續按住
func (p *Paddle) Move(ev Event) {
	if ev.Type != EventKeyDown {
		return
	}
	switch ev.Key {
	case KeyRight:
		p.X += p.Velocity
	case KeyLeft:
		p.X -= p.Velocity
	}
}

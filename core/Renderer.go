package core

// Sprite 繪圖介面載入的圖片，內容由各繪圖介面自行決定
type Sprite interface{}

// Canvas 物件繪製自己時所需要的介面
type Canvas interface {
	Draw(sprite Sprite, x, y, width, height int)
}

// Renderer 由遊戲迴圈持有的繪圖環境(視窗、畫布與事件)
type Renderer interface {
	Canvas
	Name() string
	LoadSprite(file string) (Sprite, error)
	// Clear 把畫面清成白色
	Clear()
	Present()
	// PollEvents 取出所有尚未處理的事件，沒有事件時回傳空的slice，不會阻塞
	PollEvents() []Event
	Close() error
}

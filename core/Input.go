package core

type EventType int

const (
	EventNone    EventType = iota // 這一幀沒有事件
	EventKeyDown                  // 按下按鍵
	EventQuit                     // 關閉視窗
	EventOther                    // 其他事件(放開按鍵、滑鼠...)
)

type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
)

// Event 與繪圖介面無關的輸入事件
type Event struct {
	Type EventType
	Key  Key
}

func KeyDown(key Key) Event {
	return Event{Type: EventKeyDown, Key: key}
}

func (e Event) IsQuit() bool {
	return e.Type == EventQuit
}

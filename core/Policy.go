package core

// Screen 畫面大小，原點在左上角，遊戲期間不會改變
type Screen struct {
	Width, Height int
}

// ApplyBoundary 碰到畫面邊緣就反彈，左右會把物件拉回畫面內。
// 回傳 true 代表球從畫面底部掉出去了。
//
// 上下的檢查用的是寬度而不是高度(y+w)，球拍在垂直方向不會移動，所以只會一直翻轉 DirY。
func ApplyBoundary(obj *GameObject, screen Screen) bool {
	x, y := obj.Position()
	w, _ := obj.Size()

	if x < 0 || x+w > screen.Width {
		obj.ChangeDirectionX()
		//不讓球拍跑出畫面
		if x < 0 {
			obj.SetX(0)
		} else {
			obj.SetX(screen.Width - w)
		}
	}

	if y < 0 || y+w > screen.Height {
		obj.ChangeDirectionY()
	}

	return obj.Name == NameDot && y+w > screen.Height
}

// ApplyCollision 球的底部進入球拍那一排，且球的 x 落在 (球拍x-球拍寬, 球拍x+球拍寬) 之間就往上反彈。
// 判斷範圍比球拍實際寬度還寬。
func ApplyCollision(ball, paddle *GameObject, screen Screen) bool {
	bx, by := ball.Position()
	_, bh := ball.Size()
	px, _ := paddle.Position()
	pw, ph := paddle.Size()

	if by+bh > screen.Height-ph && (bx > px-pw && bx < px+pw) {
		ball.ChangeDirectionY()
		return true
	}
	return false
}

package logger

const ConfigNotFoundMsg = "找不到設定檔 %s，使用預設值"
const SettingsLoadedMsg = "設定檔 %s 讀取完成：畫面 %dx%d，每幀 %s，速度 %d"

const RendererInitMsg = "使用 %s 繪圖介面"
const RendererCloseFailMsg = "關閉繪圖介面失敗：%v"

const AssetLoadedMsg = "載入圖片 %s"
const AssetLoadFailMsg = "載入圖片 %s 失敗：%v"

const GameStartMsg = "遊戲開始！繪圖介面：%s 畫面：%dx%d"
const PaddleHitMsg = "球碰到球拍！球 (%d, %d) 球拍 (%d, %d)"
const BallMissedMsg = "球掉出畫面底部！第 %d 幀 球 (%d, %d)"
const PlayerQuitMsg = "玩家關閉視窗，遊戲結束"

const StartupFailMsg = "遊戲啟動失敗：%v"

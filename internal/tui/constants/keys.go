package constants

// 儀表盤按鍵綁定
const (
	KeyStart   = "s"
	KeyStop    = "x"
	KeyRestart = "r"
	KeyReload  = "l"
	KeyEnable  = "e"
	KeyDisable = "d"
	KeyMask    = "m"
	KeyUnmask  = "u"

	KeyRefresh    = "R"
	KeyFilter     = "/"
	KeySortColumn = "o"
	KeySortOrder  = "O"
	KeyQuit       = "q"
)

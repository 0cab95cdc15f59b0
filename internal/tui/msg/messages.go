package msg

import (
	"github.com/Yat-Muk/vigil/internal/domain/unit"
	"github.com/Yat-Muk/vigil/internal/infra/system"
)

// UnitsLoadedMsg 單元列表刷新結果
type UnitsLoadedMsg struct {
	Records []unit.Record
	Err     error
}

// ActionResultMsg 控制動作執行結果
type ActionResultMsg struct {
	Action unit.Action
	Unit   string
	Result system.Result
}

// StatusLoadedMsg 單元詳情加載結果
type StatusLoadedMsg struct {
	Unit      string
	Text      string
	PropsLine string
	Err       error
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/pkg/appctx"
	"github.com/Yat-Muk/vigil/internal/pkg/logger"
	"github.com/Yat-Muk/vigil/internal/pkg/version"
	"github.com/Yat-Muk/vigil/internal/tui/model"
)

func main() {
	// 1. 命令行參數解析
	var (
		workDir   = flag.String("dir", "", "指定工作目錄 (默認: /etc/vigil 或 ~/.vigil)")
		showVer   = flag.Bool("version", false, "顯示版本信息")
		debugFlag = flag.Bool("debug", false, "開啟調試模式")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// 2. 環境初始化
	paths, err := appctx.NewPaths(*workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "致命錯誤: 無法初始化路徑: %v\n", err)
		os.Exit(1)
	}

	// TUI 獨佔終端，stderr 重定向到文件避免污染畫面
	stdErrFile := filepath.Join(paths.LogDir, "stderr.log")
	redirectStdErr(stdErrFile)

	logConfig := logger.DefaultConfig()
	logConfig.OutputPath = filepath.Join(paths.LogDir, "vigil.log")
	logConfig.Console = false
	if *debugFlag {
		logConfig.Level = "debug"
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic(fmt.Sprintf("日誌初始化失敗: %v", err))
	}
	defer log.Sync()

	log.Info("Vigil 正在啟動",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("session", uuid.NewString()),
	)

	// 3. 依賴注入
	deps, err := initializeDependencies(log, paths)
	if err != nil {
		log.Fatal("依賴初始化失敗", zap.Error(err))
	}
	defer deps.Close()

	runTUI(deps)
}

func runTUI(deps *AppDependencies) {
	router := model.NewRouter(deps.HandlerConfig)
	mainModel := model.NewModel(router)

	var opts []tea.ProgramOption
	if deps.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(mainModel, opts...)

	// 崩潰保護
	defer func() {
		if r := recover(); r != nil {
			p.ReleaseTerminal()
			fmt.Printf("\n\n❌ 程序崩潰: %v\n", r)
			deps.Log.Error("Panic", zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			os.Exit(1)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("程序運行錯誤: %v\n", err)
		os.Exit(1)
	}
}

func redirectStdErr(filename string) {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		os.Stderr = f
	}
}

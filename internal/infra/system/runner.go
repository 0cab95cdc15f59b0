package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Result 一次外部命令調用的完整結果
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// Ok 判斷命令是否成功退出
func (r Result) Ok() bool {
	return r.Code == 0
}

// Runner 命令執行器接口
// elevated 為 true 時通過提權包裝器調度同一條邏輯命令
type Runner interface {
	Run(ctx context.Context, elevated bool, name string, args ...string) Result
}

// ExecRunner 基於子進程的命令執行器
type ExecRunner struct {
	systemctlPath string
	pkexecPath    string
	logger        *zap.Logger
}

// NewRunner 創建命令執行器
// systemctlPath 必須是完整路徑，提權時 pkexec 不做 PATH 查找
func NewRunner(systemctlPath, pkexecPath string, logger *zap.Logger) *ExecRunner {
	return &ExecRunner{
		systemctlPath: systemctlPath,
		pkexecPath:    pkexecPath,
		logger:        logger,
	}
}

// elevatedArgv 構造提權後的完整命令行
// 提權只改變調度方式：原命令的可執行名被替換為
// "pkexec <systemctl完整路徑>"，其餘參數原樣傳遞
func elevatedArgv(pkexecPath, systemctlPath string, args []string) []string {
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, pkexecPath, systemctlPath)
	argv = append(argv, args...)
	return argv
}

// Run 同步執行命令並捕獲退出碼與輸出
// 任何調用失敗都轉換為非零 Result，從不向調用方拋出平台級錯誤
func (r *ExecRunner) Run(ctx context.Context, elevated bool, name string, args ...string) Result {
	argv := append([]string{name}, args...)
	if elevated {
		argv = elevatedArgv(r.pkexecPath, r.systemctlPath, args)
	}

	r.logger.Debug("執行命令",
		zap.Strings("argv", argv),
		zap.Bool("elevated", elevated),
	)

	if _, err := exec.LookPath(argv[0]); err != nil {
		r.logger.Error("命令不存在", zap.String("cmd", argv[0]), zap.Error(err))
		return Result{
			Code:   1,
			Stderr: fmt.Sprintf("command not found: %s", argv[0]),
		}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch e := err.(type) {
	case nil:
		// code 0
	case *exec.ExitError:
		result.Code = e.ExitCode()
	default:
		result.Code = 1
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}
	}

	if !result.Ok() {
		r.logger.Error("命令執行失敗",
			zap.Strings("argv", argv),
			zap.Int("code", result.Code),
			zap.String("stderr", result.Stderr),
		)
	}

	return result
}

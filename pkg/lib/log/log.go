// Package log 提供 go-peerid 统一日志接口
//
// 基于 Go 标准库 log/slog 封装。身份派生核心是纯函数、不产生日志；
// 本包服务于 CLI 和密钥库等外围组件。
package log

import (
	"io"
	"log/slog"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// SetDefault 设置默认 logger
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Default 返回默认 logger
func Default() *slog.Logger {
	return slog.Default()
}

// Logger 返回带子系统标签的 logger
//
// 示例：
//
//	var logger = log.Logger("peerid/cmd")
func Logger(subsystem string) *slog.Logger {
	return slog.Default().With("subsystem", subsystem)
}

// New 创建文本格式的 logger
func New(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSON 创建 JSON 格式的 logger
func NewJSON(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// SetOutput 将默认日志输出重定向到指定 Writer
//
// 常用于将日志输出到文件：
//
//	file, _ := os.OpenFile("peerid.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
//	log.SetOutput(file)
func SetOutput(w io.Writer) {
	SetOutputWithLevel(w, slog.LevelInfo)
}

// SetOutputWithLevel 同时设置日志输出目标和级别
func SetOutputWithLevel(w io.Writer, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

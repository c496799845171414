package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 包裝 slog.Logger 提供結構化日誌記錄
type Logger struct {
	*slog.Logger
	level slog.Level
}

// LoggingConfig 日誌配置結構
type LoggingConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// GenEvent 定義批次產生相關的日誌事件類型
type GenEvent string

const (
	GenEventBatchStart       GenEvent = "batch_start"
	GenEventBatchComplete    GenEvent = "batch_complete"
	GenEventValidationFailed GenEvent = "validation_failed"
	GenEventExportComplete   GenEvent = "export_complete"
	GenEventExportFailed     GenEvent = "export_failed"
)

// GenerationMetrics 批次產生監控指標
type GenerationMetrics struct {
	TotalBatches      int64         `json:"total_batches"`
	CompletedBatches  int64         `json:"completed_batches"`
	FailedValidations int64         `json:"failed_validations"`
	TotalNumbers      int64         `json:"total_numbers"`
	LastBatchAt       time.Time     `json:"last_batch_at"`
	LastBatchElapsed  time.Duration `json:"last_batch_elapsed"`
}

var (
	defaultLogger *Logger
	metrics       GenerationMetrics
)

// NewLogger 創建新的結構化日誌記錄器
func NewLogger(config *LoggingConfig) (*Logger, error) {
	if config == nil {
		config = &LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		}
	}

	// 解析日誌級別
	level, err := parseLogLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	// 創建輸出目標
	writer, err := createWriter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	// 創建處理器
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", config.Format)
	}

	logger := &Logger{
		Logger: slog.New(handler),
		level:  level,
	}

	return logger, nil
}

// InitDefaultLogger 初始化默認日誌記錄器
func InitDefaultLogger(config *LoggingConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// GetDefaultLogger 獲取默認日誌記錄器
func GetDefaultLogger() *Logger {
	if defaultLogger == nil {
		// 如果沒有初始化，創建一個基本的日誌記錄器
		logger, _ := NewLogger(nil)
		defaultLogger = logger
	}
	return defaultLogger
}

// parseLogLevel 解析日誌級別字符串
func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// createWriter 根據配置創建日誌輸出目標
func createWriter(config *LoggingConfig) (io.Writer, error) {
	switch strings.ToLower(config.Output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "file":
		if config.FilePath == "" {
			return nil, fmt.Errorf("file path is required when output is 'file'")
		}

		// 確保日誌目錄存在
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// 使用 lumberjack 進行日誌輪轉
		return &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output type: %s", config.Output)
	}
}

// LogGenEvent 記錄批次產生事件
func (l *Logger) LogGenEvent(event GenEvent, message string, attrs ...slog.Attr) {
	baseAttrs := []slog.Attr{
		slog.String("component", "generator"),
		slog.String("event", string(event)),
	}

	allAttrs := append(baseAttrs, attrs...)

	// 轉換 slog.Attr 到 any
	anyAttrs := make([]any, len(allAttrs))
	for i, attr := range allAttrs {
		anyAttrs[i] = attr
	}

	switch event {
	case GenEventValidationFailed, GenEventExportFailed:
		l.Error(message, anyAttrs...)
	case GenEventBatchStart, GenEventBatchComplete, GenEventExportComplete:
		l.Info(message, anyAttrs...)
	default:
		l.Debug(message, anyAttrs...)
	}
}

// LogBatchStart 記錄批次產生開始
func (l *Logger) LogBatchStart(totalLength, count int, unique bool) {
	metrics.TotalBatches++
	l.LogGenEvent(GenEventBatchStart, "Starting phone number batch",
		slog.Int("total_length", totalLength),
		slog.Int("count", count),
		slog.Bool("unique", unique),
		slog.Int64("total_batches", metrics.TotalBatches),
	)
}

// LogBatchComplete 記錄批次產生完成
func (l *Logger) LogBatchComplete(count, freeDigits int, elapsed time.Duration) {
	metrics.CompletedBatches++
	metrics.TotalNumbers += int64(count)
	metrics.LastBatchAt = time.Now()
	metrics.LastBatchElapsed = elapsed
	l.LogGenEvent(GenEventBatchComplete, "Phone number batch completed",
		slog.Int("count", count),
		slog.Int("free_digits", freeDigits),
		slog.Duration("elapsed", elapsed),
		slog.Int64("total_numbers", metrics.TotalNumbers),
	)
}

// LogValidationFailed 記錄可行性驗證失敗
func (l *Logger) LogValidationFailed(err error) {
	metrics.FailedValidations++
	l.LogGenEvent(GenEventValidationFailed, "Generation request rejected",
		slog.String("error", err.Error()),
		slog.Int64("failed_validations", metrics.FailedValidations),
	)
}

// LogExportComplete 記錄匯出完成
func (l *Logger) LogExportComplete(filename string, count int) {
	l.LogGenEvent(GenEventExportComplete, "Batch exported",
		slog.String("filename", filename),
		slog.Int("count", count),
	)
}

// LogExportFailed 記錄匯出失敗
func (l *Logger) LogExportFailed(filename string, err error) {
	l.LogGenEvent(GenEventExportFailed, "Batch export failed",
		slog.String("filename", filename),
		slog.String("error", err.Error()),
	)
}

// GetGenerationMetrics 獲取批次產生監控指標
func GetGenerationMetrics() GenerationMetrics {
	return metrics
}

// ResetGenerationMetrics 重置批次產生監控指標
func ResetGenerationMetrics() {
	metrics = GenerationMetrics{}
}

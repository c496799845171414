package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  *LoggingConfig
		wantErr bool
	}{
		{
			name: "valid text logger",
			config: &LoggingConfig{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "valid json logger",
			config: &LoggingConfig{
				Level:  "debug",
				Format: "json",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: &LoggingConfig{
				Level:  "invalid",
				Format: "text",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "invalid format",
			config: &LoggingConfig{
				Level:  "info",
				Format: "invalid",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "invalid output",
			config: &LoggingConfig{
				Level:  "info",
				Format: "text",
				Output: "invalid",
			},
			wantErr: true,
		},
		{
			name:    "nil config uses defaults",
			config:  nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Errorf("NewLogger() returned nil logger without error")
			}
		})
	}
}

func newBufferLogger(buf *bytes.Buffer) *Logger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return &Logger{
		Logger: slog.New(handler),
		level:  slog.LevelDebug,
	}
}

func TestLogGenEvent(t *testing.T) {
	// 創建一個緩衝區來捕獲日誌輸出
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	tests := []struct {
		name     string
		event    GenEvent
		message  string
		attrs    []slog.Attr
		wantText string
	}{
		{
			name:     "batch start event",
			event:    GenEventBatchStart,
			message:  "Starting phone number batch",
			attrs:    []slog.Attr{slog.Int("count", 10)},
			wantText: "batch_start",
		},
		{
			name:     "batch complete event",
			event:    GenEventBatchComplete,
			message:  "Phone number batch completed",
			attrs:    []slog.Attr{slog.Duration("elapsed", 5 * time.Millisecond)},
			wantText: "batch_complete",
		},
		{
			name:     "validation failed event",
			event:    GenEventValidationFailed,
			message:  "Generation request rejected",
			attrs:    []slog.Attr{slog.String("error", "too short")},
			wantText: "validation_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			logger.LogGenEvent(tt.event, tt.message, tt.attrs...)

			output := buf.String()
			if !strings.Contains(output, tt.wantText) {
				t.Errorf("LogGenEvent() output = %v, want to contain %v", output, tt.wantText)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("LogGenEvent() output = %v, want to contain message %v", output, tt.message)
			}
		})
	}
}

func TestGenerationMetrics(t *testing.T) {
	// 重置指標
	ResetGenerationMetrics()

	// 測試初始狀態
	m := GetGenerationMetrics()
	if m.TotalBatches != 0 {
		t.Errorf("Initial TotalBatches = %v, want 0", m.TotalBatches)
	}

	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// 模擬一次完整批次
	logger.LogBatchStart(11, 25, true)
	logger.LogBatchComplete(25, 7, 3*time.Millisecond)

	m = GetGenerationMetrics()
	if m.TotalBatches != 1 {
		t.Errorf("After batch start TotalBatches = %v, want 1", m.TotalBatches)
	}
	if m.CompletedBatches != 1 {
		t.Errorf("After batch complete CompletedBatches = %v, want 1", m.CompletedBatches)
	}
	if m.TotalNumbers != 25 {
		t.Errorf("After batch complete TotalNumbers = %v, want 25", m.TotalNumbers)
	}

	// 模擬驗證失敗
	logger.LogValidationFailed(errors.New("total length too short"))

	m = GetGenerationMetrics()
	if m.FailedValidations != 1 {
		t.Errorf("After validation failure FailedValidations = %v, want 1", m.FailedValidations)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		levelStr  string
		wantLevel slog.Level
		wantErr   bool
	}{
		{"debug level", "debug", slog.LevelDebug, false},
		{"info level", "info", slog.LevelInfo, false},
		{"warn level", "warn", slog.LevelWarn, false},
		{"warning level", "warning", slog.LevelWarn, false},
		{"error level", "error", slog.LevelError, false},
		{"invalid level", "invalid", slog.LevelInfo, true},
		{"empty level", "", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLevel, err := parseLogLevel(tt.levelStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotLevel != tt.wantLevel {
				t.Errorf("parseLogLevel() = %v, want %v", gotLevel, tt.wantLevel)
			}
		})
	}
}

func TestInitDefaultLogger(t *testing.T) {
	// 測試初始化默認日誌記錄器
	config := &LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stdout",
	}

	err := InitDefaultLogger(config)
	if err != nil {
		t.Errorf("InitDefaultLogger() error = %v", err)
	}

	logger := GetDefaultLogger()
	if logger == nil {
		t.Errorf("GetDefaultLogger() returned nil")
	}
}

func BenchmarkLogGenEvent(b *testing.B) {
	config := &LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}

	logger, err := NewLogger(config)
	if err != nil {
		b.Fatalf("Failed to create logger: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.LogGenEvent(GenEventBatchComplete, "Test message",
			slog.Int("count", i),
		)
	}
}

package config

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Generator GeneratorConfig `koanf:"generator"`
	Output    OutputConfig    `koanf:"output"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// GeneratorConfig 批次產生的預設參數，可被命令列旗標覆寫
type GeneratorConfig struct {
	TotalLength int    `koanf:"total_length"`
	CountryCode string `koanf:"country_code"`
	LocalCode   string `koanf:"local_code"`
	Count       int    `koanf:"count"`
	IncludePlus bool   `koanf:"include_plus"`
	Unique      bool   `koanf:"unique"`
}

type OutputConfig struct {
	Filename  string `koanf:"filename"`
	Delimiter string `koanf:"delimiter"`
}

type LoggingConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`   // log file path when output is file
	MaxSize    int    `koanf:"max_size"`    // max size in MB
	MaxBackups int    `koanf:"max_backups"` // max number of backup files
	MaxAge     int    `koanf:"max_age"`     // max age in days
	Compress   bool   `koanf:"compress"`    // compress old log files
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			log.Printf("Warning: failed to load config file %s: %v", configPath, err)
		}
	}

	if err := k.Load(env.Provider("NUMGEN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "NUMGEN_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 處理環境變數中底線被換成點的複合鍵
	applyEnvOverrides(&config, k)

	setDefaults(&config, k)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	GlobalConfig = &config

	return &config, nil
}

func setDefaults(cfg *Config, k *koanf.Koanf) {
	if cfg.Generator.Count == 0 {
		cfg.Generator.Count = 10
	}
	// 布林預設值為 true，需檢查鍵是否存在才能保留明確設定的 false
	if !k.Exists("generator.include.plus") && !k.Exists("generator.include_plus") {
		cfg.Generator.IncludePlus = true
	}
	if !k.Exists("generator.unique") {
		cfg.Generator.Unique = true
	}

	if cfg.Output.Filename == "" {
		cfg.Output.Filename = "phone_numbers.csv"
	}
	if cfg.Output.Delimiter == "" {
		cfg.Output.Delimiter = ","
	}

	// Logging 預設值
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Logging.MaxSize == 0 {
		cfg.Logging.MaxSize = 100 // 100MB
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 3
	}
	if cfg.Logging.MaxAge == 0 {
		cfg.Logging.MaxAge = 28 // 28 days
	}
}

// applyEnvOverrides 環境變數的底線在載入時被轉成點，
// 這裡把複合名稱的鍵對回正確欄位
func applyEnvOverrides(cfg *Config, k *koanf.Koanf) {
	if v := k.Int("generator.total.length"); v != 0 {
		cfg.Generator.TotalLength = v
	}
	if v := k.String("generator.country.code"); v != "" {
		cfg.Generator.CountryCode = v
	}
	if v := k.String("generator.local.code"); v != "" {
		cfg.Generator.LocalCode = v
	}
	if k.Exists("generator.include.plus") {
		cfg.Generator.IncludePlus = k.Bool("generator.include.plus")
	}
	if v := k.String("logging.file.path"); v != "" {
		cfg.Logging.FilePath = v
	}
	if v := k.Int("logging.max.size"); v != 0 {
		cfg.Logging.MaxSize = v
	}
	if v := k.Int("logging.max.backups"); v != 0 {
		cfg.Logging.MaxBackups = v
	}
	if v := k.Int("logging.max.age"); v != 0 {
		cfg.Logging.MaxAge = v
	}
}

// DelimiterRune 回傳分隔符號的 rune 形式
func (c *OutputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func validateConfig(cfg *Config) error {
	if err := validateGeneratorConfig(&cfg.Generator); err != nil {
		return fmt.Errorf("generator config validation failed: %w", err)
	}

	if err := validateOutputConfig(&cfg.Output); err != nil {
		return fmt.Errorf("output config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateGeneratorConfig(cfg *GeneratorConfig) error {
	if cfg.TotalLength < 0 {
		return fmt.Errorf("total length cannot be negative, got %d", cfg.TotalLength)
	}

	if cfg.TotalLength > 64 {
		return fmt.Errorf("total length cannot exceed 64 digits, got %d", cfg.TotalLength)
	}

	if cfg.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}

	if cfg.Count > 1000000 {
		return fmt.Errorf("count cannot exceed 1000000, got %d", cfg.Count)
	}

	countryDigits := strings.TrimPrefix(cfg.CountryCode, "+")
	if countryDigits != "" && !isDigitString(countryDigits) {
		return fmt.Errorf("country code must contain digits only, got %q", cfg.CountryCode)
	}

	if cfg.LocalCode != "" && !isDigitString(cfg.LocalCode) {
		return fmt.Errorf("local code must contain digits only, got %q", cfg.LocalCode)
	}

	return nil
}

func validateOutputConfig(cfg *OutputConfig) error {
	if cfg.Filename == "" {
		return fmt.Errorf("output filename cannot be empty")
	}

	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}

	if cfg.DelimiterRune() == '\n' || cfg.DelimiterRune() == '\r' {
		return fmt.Errorf("delimiter cannot be a line break character")
	}

	return nil
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid logging level: %s, must be one of: debug, info, warn, error", cfg.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}

	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid logging format: %s, must be one of: json, text", cfg.Format)
	}

	validOutputs := map[string]bool{
		"stdout": true,
		"stderr": true,
		"file":   true,
	}

	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid logging output: %s, must be one of: stdout, stderr, file", cfg.Output)
	}

	if cfg.Output == "file" && cfg.FilePath == "" {
		return fmt.Errorf("file_path must be specified when output is 'file'")
	}

	if cfg.MaxSize < 1 || cfg.MaxSize > 1000 {
		return fmt.Errorf("max_size must be between 1 and 1000 MB, got %d", cfg.MaxSize)
	}

	if cfg.MaxBackups < 0 || cfg.MaxBackups > 100 {
		return fmt.Errorf("max_backups must be between 0 and 100, got %d", cfg.MaxBackups)
	}

	if cfg.MaxAge < 1 || cfg.MaxAge > 365 {
		return fmt.Errorf("max_age must be between 1 and 365 days, got %d", cfg.MaxAge)
	}

	return nil
}

func isDigitString(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func GetConfig() *Config {
	return GlobalConfig
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"numgen/internal/config"
	"numgen/internal/exporter"
	"numgen/internal/generator"
	"numgen/internal/logger"
	"numgen/internal/models"
)

var (
	configPath  string
	totalLength int
	countryCode string
	localCode   string
	count       int
	outFile     string
	noPlus      bool
	noUnique    bool
	interactive bool
)

func init() {
	generateCmd.Flags().IntVarP(&totalLength, "total", "t", 0, "電話號碼總位數（不含 '+'）")
	generateCmd.Flags().StringVarP(&countryCode, "country", "c", "", "國碼（例如 +1 或 1）")
	generateCmd.Flags().StringVarP(&localCode, "local", "l", "", "區碼（選填）")
	generateCmd.Flags().IntVarP(&count, "count", "n", 0, "要產生的號碼數量")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", "", "輸出 CSV 檔案名稱")
	generateCmd.Flags().BoolVar(&noPlus, "no-plus", false, "輸出不包含 '+' 符號")
	generateCmd.Flags().BoolVar(&noUnique, "no-unique", false, "允許重複號碼（不強制唯一）")
	generateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "強制使用互動式輸入")
	generateCmd.Flags().StringVar(&configPath, "config", "config.toml", "配置檔路徑")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "產生隨機電話號碼批次並匯出 CSV",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "載入配置失敗: %v\n", err)
			os.Exit(1)
		}

		if err := logger.InitDefaultLogger(&logger.LoggingConfig{
			Level:      cfg.Logging.Level,
			Format:     cfg.Logging.Format,
			Output:     cfg.Logging.Output,
			FilePath:   cfg.Logging.FilePath,
			MaxSize:    cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAge:     cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "初始化日誌失敗: %v\n", err)
			os.Exit(1)
		}

		req, filename := buildRequest(cmd, cfg)

		// 缺少必要參數或明確要求時進入互動模式
		if interactive || req.TotalLength == 0 || req.CountryCode == "" {
			req, filename = interactiveRequest(os.Stdin, os.Stdout, req, filename)
		}

		log := logger.GetDefaultLogger()
		log.LogBatchStart(req.TotalLength, req.Count, req.Unique)

		svc := generator.NewService(nil)
		batch, err := svc.GenerateBatch(req)
		if err != nil {
			log.LogValidationFailed(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.LogBatchComplete(len(batch.Numbers), batch.FreeDigits, batch.Elapsed)

		exp := exporter.NewCSVExporter(cfg.Output.DelimiterRune())
		if err := exp.Export(filename, batch.Numbers); err != nil {
			log.LogExportFailed(filename, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.LogExportComplete(filename, len(batch.Numbers))

		fmt.Printf("Success — generated %d phone numbers and saved to '%s'.\n", len(batch.Numbers), filename)
	},
}

// buildRequest 以配置檔為預設值，再套用有變更的命令列旗標
func buildRequest(cmd *cobra.Command, cfg *config.Config) (models.GenerationRequest, string) {
	req := models.GenerationRequest{
		TotalLength: cfg.Generator.TotalLength,
		CountryCode: cfg.Generator.CountryCode,
		LocalCode:   cfg.Generator.LocalCode,
		Count:       cfg.Generator.Count,
		Unique:      cfg.Generator.Unique,
		IncludePlus: cfg.Generator.IncludePlus,
	}
	filename := cfg.Output.Filename

	flags := cmd.Flags()
	if flags.Changed("total") {
		req.TotalLength = totalLength
	}
	if flags.Changed("country") {
		req.CountryCode = countryCode
	}
	if flags.Changed("local") {
		req.LocalCode = localCode
	}
	if flags.Changed("count") {
		req.Count = count
	}
	if flags.Changed("out") {
		filename = outFile
	}
	if flags.Changed("no-plus") {
		req.IncludePlus = !noPlus
	}
	if flags.Changed("no-unique") {
		req.Unique = !noUnique
	}

	return req, filename
}

// interactiveRequest 以互動提示收集產生參數，Enter 接受預設值
func interactiveRequest(r io.Reader, w io.Writer, req models.GenerationRequest, filename string) (models.GenerationRequest, string) {
	fmt.Fprintln(w, "隨機電話號碼產生器 — 互動模式")

	reader := bufio.NewReader(r)

	req.TotalLength = promptInt(reader, w, "請輸入電話號碼總位數（不含 '+'）: ", req.TotalLength)

	country := promptString(reader, w, "請輸入國碼（例如 +1, 1, +886, 886）: ", req.CountryCode)
	if country == "" {
		fmt.Fprintln(w, "國碼為必填")
		os.Exit(1)
	}
	req.CountryCode = country

	req.LocalCode = promptString(reader, w, "請輸入區碼（例如 415, 02），沒有請直接按 Enter: ", req.LocalCode)
	req.Count = promptInt(reader, w, fmt.Sprintf("請輸入要產生的號碼數量 [預設: %d]: ", req.Count), req.Count)
	filename = promptString(reader, w, fmt.Sprintf("請輸入輸出 CSV 檔案名稱 [預設: %s]: ", filename), filename)
	req.IncludePlus = promptYesNo(reader, w, "輸出是否包含 '+' 符號？(Y/n) [預設: Y]: ", req.IncludePlus)
	req.Unique = promptYesNo(reader, w, "是否要求號碼唯一？(Y/n) [預設: Y]: ", req.Unique)

	return req, filename
}

// promptInt 提示輸入整數，輸入無效時重新提示；空白輸入接受預設值
func promptInt(reader *bufio.Reader, w io.Writer, prompt string, defaultVal int) int {
	for {
		fmt.Fprint(w, prompt)
		line, err := reader.ReadString('\n')
		raw := strings.TrimSpace(line)
		if raw == "" {
			if defaultVal != 0 {
				return defaultVal
			}
			if err != nil {
				// 輸入來源已關閉，無法再提示
				fmt.Fprintln(w, "沒有輸入可讀取")
				os.Exit(1)
			}
			fmt.Fprintln(w, "請輸入有效的整數")
			continue
		}
		val, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(w, "請輸入有效的整數")
			continue
		}
		return val
	}
}

func promptString(reader *bufio.Reader, w io.Writer, prompt, defaultVal string) string {
	fmt.Fprint(w, prompt)
	line, _ := reader.ReadString('\n')
	raw := strings.TrimSpace(line)
	if raw == "" {
		return defaultVal
	}
	return raw
}

func promptYesNo(reader *bufio.Reader, w io.Writer, prompt string, defaultVal bool) bool {
	fmt.Fprint(w, prompt)
	line, _ := reader.ReadString('\n')
	raw := strings.ToLower(strings.TrimSpace(line))
	if raw == "" {
		return defaultVal
	}
	return raw != "n" && raw != "no"
}

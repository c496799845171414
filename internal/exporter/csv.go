package exporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"numgen/internal/models"
)

// DefaultHeader 輸出檔案的標頭欄位名稱
const DefaultHeader = "Phone Number"

// CSVExporter 將電話號碼批次寫入分隔文字檔，一行一個號碼
type CSVExporter struct {
	delimiter rune
	header    string
}

// NewCSVExporter 建立 CSV 匯出器；delimiter 為 0 時使用逗號
func NewCSVExporter(delimiter rune) *CSVExporter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVExporter{
		delimiter: delimiter,
		header:    DefaultHeader,
	}
}

// Export 建立輸出檔案，寫入標頭後依產生順序寫入每個號碼
func (e *CSVExporter) Export(filename string, numbers []models.PhoneNumber) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("無法建立輸出檔案: %w", err)
	}
	defer outFile.Close()

	writer := csv.NewWriter(outFile)
	writer.Comma = e.delimiter

	if err := writer.Write([]string{e.header}); err != nil {
		return fmt.Errorf("寫入 CSV 標頭失敗: %w", err)
	}

	for _, number := range numbers {
		if err := writer.Write([]string{string(number)}); err != nil {
			return fmt.Errorf("寫入 CSV 時發生錯誤: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("寫入 CSV 時發生錯誤: %w", err)
	}

	return outFile.Close()
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// GenerationRequest 一次批次產生所需的完整參數
type GenerationRequest struct {
	// 電話號碼總位數（不含 '+'）
	TotalLength int `json:"total_length"`

	// 國碼，僅數字（正規化時會去除前導 '+'）
	CountryCode string `json:"country_code"`

	// 區碼，僅數字，可為空
	LocalCode string `json:"local_code,omitempty"`

	// 要產生的號碼數量
	Count int `json:"count"`

	// 是否要求批次內號碼唯一
	Unique bool `json:"unique"`

	// 輸出是否包含前導 '+'
	IncludePlus bool `json:"include_plus"`
}

// Normalize 整理輸入：去除空白與國碼的前導 '+'，並檢查基本格式。
// 只做純字串轉換，長度與可行性由 generator 驗證。
func (r *GenerationRequest) Normalize() error {
	r.CountryCode = strings.TrimPrefix(strings.TrimSpace(r.CountryCode), "+")
	r.LocalCode = strings.TrimSpace(r.LocalCode)

	if r.TotalLength <= 0 {
		return fmt.Errorf("total length must be a positive integer, got %d", r.TotalLength)
	}
	if r.CountryCode == "" {
		return fmt.Errorf("country code is required")
	}
	if !isDigits(r.CountryCode) {
		return fmt.Errorf("country code must contain digits only (a leading '+' is allowed): %q", r.CountryCode)
	}
	if r.LocalCode != "" && !isDigits(r.LocalCode) {
		return fmt.Errorf("local code must contain digits only: %q", r.LocalCode)
	}
	if r.Count <= 0 {
		return fmt.Errorf("count must be a positive integer, got %d", r.Count)
	}
	return nil
}

// Prefix 回傳每個號碼共用的固定前綴（依設定含 '+'）
func (r *GenerationRequest) Prefix() string {
	if r.IncludePlus {
		return "+" + r.CountryCode + r.LocalCode
	}
	return r.CountryCode + r.LocalCode
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// PhoneNumber 產生結果中的單一電話號碼字串
type PhoneNumber string

// Digits 回傳號碼的純數字部分（去除前導 '+'）
func (p PhoneNumber) Digits() string {
	return strings.TrimPrefix(string(p), "+")
}

// HasPlus 檢查號碼是否帶有前導 '+'
func (p PhoneNumber) HasPlus() bool {
	return strings.HasPrefix(string(p), "+")
}

// GenerationBatch 單次產生批次的結果，僅存在於一次執行期間
type GenerationBatch struct {
	Request     GenerationRequest `json:"request"`
	Numbers     []PhoneNumber     `json:"numbers"`
	FreeDigits  int               `json:"free_digits"`
	GeneratedAt time.Time         `json:"generated_at"`
	Elapsed     time.Duration     `json:"elapsed"`
}

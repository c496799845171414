package generator

import (
	"time"

	"numgen/internal/models"
)

// Service 將請求正規化、可行性驗證與採樣組合成完整的批次產生流程
type Service struct {
	sampler *Sampler
}

// NewService 建立批次產生服務；sampler 為 nil 時使用隨機種子
func NewService(sampler *Sampler) *Service {
	if sampler == nil {
		sampler = NewSampler()
	}
	return &Service{sampler: sampler}
}

// GenerateBatch 執行一次完整的批次產生。
// 所有錯誤都在產生任何號碼之前回報，失敗時沒有部分結果。
func (s *Service) GenerateBatch(req models.GenerationRequest) (*models.GenerationBatch, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	freeDigits, err := Validate(req.TotalLength, req.CountryCode, req.LocalCode, req.Count, req.Unique)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := s.sampler.Generate(req.Prefix(), freeDigits, req.Count, req.Unique)
	if err != nil {
		return nil, err
	}

	numbers := make([]models.PhoneNumber, len(raw))
	for i, n := range raw {
		numbers[i] = models.PhoneNumber(n)
	}

	return &models.GenerationBatch{
		Request:     req,
		Numbers:     numbers,
		FreeDigits:  freeDigits,
		GeneratedAt: start,
		Elapsed:     time.Since(start),
	}, nil
}

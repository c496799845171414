package generator

import (
	"fmt"
	"math/rand/v2"
)

const digitChars = "0123456789"

// denseSpaceLimit 洗牌法需要實體化整個組合空間，超過此大小時
// 一律退回拒絕採樣
const denseSpaceLimit = 1 << 24

// Sampler 隨機號碼採樣器。非並發安全，單一批次內使用即可。
type Sampler struct {
	rng *rand.Rand
}

// NewSampler 建立使用隨機種子的採樣器
func NewSampler() *Sampler {
	return NewSeededSampler(rand.Uint64(), rand.Uint64())
}

// NewSeededSampler 建立使用固定種子的採樣器（測試用）
func NewSeededSampler(seed1, seed2 uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate 產生 count 個電話號碼，每個由 prefix 接上 freeDigits 位
// 零補齊的隨機數字組成，順序即產生順序。
// unique 為 true 時保證批次內兩兩相異。
func (s *Sampler) Generate(prefix string, freeDigits, count int, unique bool) ([]string, error) {
	if freeDigits <= 0 {
		return nil, fmt.Errorf("free digit count must be positive, got %d", freeDigits)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	if !unique {
		return s.generateWithDuplicates(prefix, freeDigits, count), nil
	}

	if !feasible(freeDigits, count) {
		return nil, &InfeasibleUniquenessError{Count: count, FreeDigits: freeDigits}
	}

	// 批次數量接近組合空間時，拒絕採樣的碰撞率會急遽升高，
	// 改用對整個空間洗牌的方式，讓 count == 10^freeDigits 也能完成
	if space, exact := combinationSpace(freeDigits); exact && space <= denseSpaceLimit && uint64(count) >= space/2 {
		return s.generateDense(prefix, freeDigits, count, space), nil
	}

	return s.generateSparse(prefix, freeDigits, count), nil
}

// generateWithDuplicates 獨立抽取每個號碼，允許批次內重複
func (s *Sampler) generateWithDuplicates(prefix string, freeDigits, count int) []string {
	numbers := make([]string, count)
	body := make([]byte, freeDigits)
	for i := range numbers {
		s.fillDigits(body)
		numbers[i] = prefix + string(body)
	}
	return numbers
}

// generateSparse 以拒絕採樣產生不重複號碼，碰撞時重抽。
// 可行性已驗證且 count 遠小於組合空間，期望時間與 count 呈線性。
func (s *Sampler) generateSparse(prefix string, freeDigits, count int) []string {
	numbers := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	body := make([]byte, freeDigits)

	for len(numbers) < count {
		s.fillDigits(body)
		candidate := string(body)
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		numbers = append(numbers, prefix+candidate)
	}
	return numbers
}

// generateDense 對 [0, space) 洗牌後取前 count 個，保證不重複
func (s *Sampler) generateDense(prefix string, freeDigits, count int, space uint64) []string {
	numbers := make([]string, count)
	for i, v := range s.rng.Perm(int(space))[:count] {
		numbers[i] = fmt.Sprintf("%s%0*d", prefix, freeDigits, v)
	}
	return numbers
}

func (s *Sampler) fillDigits(body []byte) {
	for i := range body {
		body[i] = digitChars[s.rng.IntN(10)]
	}
}

package generator

// maxExactFreeDigits 10^19 仍可用 uint64 精確表示；超過的組合空間
// 對任何 int 範圍的批次數量都必然可行
const maxExactFreeDigits = 19

// Validate 驗證產生參數並回傳可自由隨機的位數。
// 純計算，沒有副作用；任何錯誤都在實際產生號碼之前回報。
func Validate(totalLength int, countryCode, localCode string, count int, unique bool) (int, error) {
	freeDigits := totalLength - len(countryCode) - len(localCode)
	if freeDigits <= 0 {
		return 0, &InvalidLengthError{
			TotalLength:   totalLength,
			CountryDigits: len(countryCode),
			LocalDigits:   len(localCode),
		}
	}

	if unique && !feasible(freeDigits, count) {
		return 0, &InfeasibleUniquenessError{Count: count, FreeDigits: freeDigits}
	}

	return freeDigits, nil
}

// feasible 檢查 count 是否不超過 10^freeDigits
func feasible(freeDigits, count int) bool {
	space, exact := combinationSpace(freeDigits)
	if !exact {
		return true
	}
	return uint64(count) <= space
}

// combinationSpace 回傳 10^freeDigits。第二個回傳值為 false 時表示
// 組合空間超出 uint64 範圍，呼叫端應視為無限大。
func combinationSpace(freeDigits int) (uint64, bool) {
	if freeDigits > maxExactFreeDigits {
		return 0, false
	}
	space := uint64(1)
	for i := 0; i < freeDigits; i++ {
		space *= 10
	}
	return space, true
}

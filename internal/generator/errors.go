package generator

import "fmt"

// InvalidLengthError 總長度扣除國碼與區碼後沒有剩餘的隨機位數
type InvalidLengthError struct {
	TotalLength   int
	CountryDigits int
	LocalDigits   int
}

func (e *InvalidLengthError) Error() string {
	free := e.TotalLength - e.CountryDigits - e.LocalDigits
	return fmt.Sprintf("total length %d is too short for country (%d digits) and local (%d digits) codes: need remaining random digits > 0, got %d",
		e.TotalLength, e.CountryDigits, e.LocalDigits, free)
}

// InfeasibleUniquenessError 要求的唯一號碼數量超過可用的數字組合空間
type InfeasibleUniquenessError struct {
	Count      int
	FreeDigits int
}

func (e *InfeasibleUniquenessError) Error() string {
	return fmt.Sprintf("cannot generate %d unique numbers with %d random digits: maximum unique combinations = 10^%d",
		e.Count, e.FreeDigits, e.FreeDigits)
}

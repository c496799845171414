package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler() *Sampler {
	return NewSeededSampler(42, 7)
}

func TestGenerateShape(t *testing.T) {
	s := newTestSampler()

	numbers, err := s.Generate("+1415", 7, 50, false)
	require.NoError(t, err)
	require.Len(t, numbers, 50)

	for _, n := range numbers {
		assert.True(t, strings.HasPrefix(n, "+1415"), "number %q missing prefix", n)
		assert.Len(t, n, len("+1415")+7)
		for _, c := range n[len("+1415"):] {
			assert.True(t, c >= '0' && c <= '9', "non-digit %q in %q", c, n)
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	s := newTestSampler()

	numbers, err := s.Generate("8869", 5, 2000, true)
	require.NoError(t, err)
	require.Len(t, numbers, 2000)

	seen := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		_, dup := seen[n]
		assert.False(t, dup, "duplicate number %q", n)
		seen[n] = struct{}{}
	}
}

func TestGenerateUniqueFullSpace(t *testing.T) {
	s := newTestSampler()

	// count 等於整個組合空間時仍需成功且兩兩相異
	numbers, err := s.Generate("1415", 2, 100, true)
	require.NoError(t, err)
	require.Len(t, numbers, 100)

	seen := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		require.Len(t, n, len("1415")+2)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestGenerateUniqueSingleDigit(t *testing.T) {
	s := newTestSampler()

	numbers, err := s.Generate("+1415", 1, 10, true)
	require.NoError(t, err)
	require.Len(t, numbers, 10)

	seen := make(map[string]struct{})
	for _, n := range numbers {
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestGenerateInfeasibleUnique(t *testing.T) {
	s := newTestSampler()

	_, err := s.Generate("1415", 1, 11, true)
	require.Error(t, err)

	var uniqueErr *InfeasibleUniquenessError
	assert.True(t, errors.As(err, &uniqueErr))
}

func TestGenerateInvalidArguments(t *testing.T) {
	s := newTestSampler()

	_, err := s.Generate("1", 0, 5, false)
	assert.Error(t, err)

	_, err = s.Generate("1", -3, 5, true)
	assert.Error(t, err)

	_, err = s.Generate("1", 4, 0, false)
	assert.Error(t, err)
}

func TestGenerateZeroPadding(t *testing.T) {
	s := newTestSampler()

	// 密集批次走洗牌路徑，必定包含 0，必須補零到固定寬度
	numbers, err := s.Generate("", 3, 1000, true)
	require.NoError(t, err)

	found := false
	for _, n := range numbers {
		require.Len(t, n, 3)
		if n == "000" {
			found = true
		}
	}
	assert.True(t, found, "full space should contain 000")
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, err := NewSeededSampler(1, 2).Generate("+44", 6, 20, true)
	require.NoError(t, err)
	b, err := NewSeededSampler(1, 2).Generate("+44", 6, 20, true)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

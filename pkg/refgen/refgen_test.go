package refgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		ref, err := Generate()
		require.NoError(t, err)
		require.Len(t, ref, Length)

		for _, c := range ref {
			require.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q in %s", c, ref)
		}

		seen[ref] = struct{}{}
	}

	// 100 номеров из 36^8 комбинаций не должны совпасть
	require.Len(t, seen, 100)
}

func TestGenerateCoversWholeAlphabet(t *testing.T) {
	counts := make(map[rune]int, len(Alphabet))

	// 2000 номеров по 8 символов: около 444 вхождений на символ,
	// вероятность пропустить хотя бы один пренебрежимо мала
	for i := 0; i < 2000; i++ {
		ref, err := Generate()
		require.NoError(t, err)

		for _, c := range ref {
			counts[c]++
		}
	}

	for _, c := range Alphabet {
		require.NotZero(t, counts[c], "character %q never generated", c)
	}
}

package comics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMintedCodesMatchShapeAndAreUnique(t *testing.T) {
	m := NewCodeMinter()
	seen := make(map[string]struct{})

	for i := 0; i < 500; i++ {
		code, err := m.Next()
		require.NoError(t, err)
		require.Regexp(t, CodePattern, code)

		_, dup := seen[code]
		require.False(t, dup, "code %s minted twice", code)
		seen[code] = struct{}{}
	}
}

func TestMarkedCodesAreNeverMinted(t *testing.T) {
	m := NewCodeMinter()

	// Leave exactly one suffix free.
	for n := 1000; n <= 9999; n++ {
		if n != 4242 {
			m.Mark(fmt.Sprintf("IDCOM%d", n))
		}
	}

	code, err := m.Next()
	require.NoError(t, err)
	require.Equal(t, "IDCOM4242", code)
}

func TestMarkIsCaseInsensitive(t *testing.T) {
	m := NewCodeMinter()
	m.Mark("idcom1234")
	require.True(t, m.Issued("IDCOM1234"))
}

func TestCodePoolExhausted(t *testing.T) {
	m := NewCodeMinter()
	for n := 1000; n <= 9999; n++ {
		m.Mark(fmt.Sprintf("IDCOM%d", n))
	}

	_, err := m.Next()
	require.ErrorIs(t, err, ErrCodePoolExhausted)
}

func TestForeignMarksDoNotExhaustPool(t *testing.T) {
	m := NewCodeMinter()
	// Codes outside the mintable shape (e.g. hand-edited catalog rows) fill
	// the issued set but not the pool.
	for n := 0; n < codeSpan; n++ {
		m.Mark(fmt.Sprintf("LEGACY%05d", n))
	}

	code, err := m.Next()
	require.NoError(t, err)
	require.Regexp(t, CodePattern, code)
}

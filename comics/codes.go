package comics

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	codePrefix = "IDCOM"
	codeMin    = 1000
	codeSpan   = 9000 // four-digit suffixes 1000..9999
)

// CodePattern matches every code the minter can produce.
var CodePattern = regexp.MustCompile(`^IDCOM\d{4}$`)

// CodeMinter hands out catalog codes of the shape IDCOM####, guaranteed
// unique for the lifetime of the process. Codes loaded from the catalog file
// are marked as issued so a new session never re-mints them.
type CodeMinter struct {
	issued map[string]struct{}
}

// NewCodeMinter returns a minter with an empty issued set.
func NewCodeMinter() *CodeMinter {
	return &CodeMinter{issued: make(map[string]struct{})}
}

// Mark records code as already issued. Marking an unknown shape is allowed;
// the set only has to prevent collisions with what the minter could produce.
func (m *CodeMinter) Mark(code string) {
	m.issued[strings.ToUpper(code)] = struct{}{}
}

// Issued reports whether code has been handed out or marked this session.
func (m *CodeMinter) Issued(code string) bool {
	_, ok := m.issued[strings.ToUpper(code)]
	return ok
}

// Next mints a fresh code. It samples the suffix uniformly from a
// cryptographically strong source and retries on collision. Returns
// ErrCodePoolExhausted once all 9,000 suffixes are taken.
func (m *CodeMinter) Next() (string, error) {
	if m.poolFull() {
		return "", ErrCodePoolExhausted
	}
	for {
		n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
		if err != nil {
			return "", fmt.Errorf("sample code suffix: %w", err)
		}
		code := fmt.Sprintf("%s%d", codePrefix, codeMin+n.Int64())
		if m.Issued(code) {
			continue
		}
		m.Mark(code)
		return code, nil
	}
}

func (m *CodeMinter) poolFull() bool {
	if len(m.issued) < codeSpan {
		return false
	}
	// The set may contain marked codes outside the mintable shape, so count
	// only the ones the minter competes with.
	mintable := 0
	for code := range m.issued {
		if CodePattern.MatchString(code) {
			mintable++
		}
	}
	return mintable >= codeSpan
}

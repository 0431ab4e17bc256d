package domain

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// HashType is the only hash type produced and verified.
const HashType = "sha256"

// HashLines fingerprints an ordered list of lines. Blank and whitespace-only
// lines are dropped and the rest joined with LF, so line endings and blank
// lines never change the result.
func HashLines(lines []string) string {
	h := sha256.New()

	first := true

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !first {
			_, _ = h.Write([]byte{'\n'})
		}

		_, _ = h.Write([]byte(line))
		first = false
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

// HashContent fingerprints text content line by line.
func HashContent(content []byte) string {
	return HashLines(strings.FieldsFunc(string(content), func(r rune) bool {
		return r == '\r' || r == '\n'
	}))
}

// HashFile reads path and returns its content hash.
func HashFile(fs adapter.SourceFSAdapter, path m.Path) (string, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return "", err
	}

	return HashContent(content), nil
}

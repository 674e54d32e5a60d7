package compendium

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Extractor reads the bytes of selected files and materializes their text.
type Extractor struct {
	logger *zap.Logger

	// latin1Fallback switches the decode policy for non-UTF-8 content from
	// replacement runes to a byte-per-rune Latin-1 interpretation. The
	// documenter path uses this.
	latin1Fallback bool
}

// NewExtractor returns an Extractor with the default replacement-decode
// policy. A nil logger is replaced with a no-op one.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// WithLatin1Fallback returns a copy of the extractor that decodes non-UTF-8
// files as Latin-1 instead of inserting replacement runes.
func (x *Extractor) WithLatin1Fallback() *Extractor {
	cp := *x
	cp.latin1Fallback = true
	return &cp
}

// Extract reads each entry's file under root and returns the contents in
// input order. A file that cannot be read (permissions, removed since the
// scan) is logged and omitted; one bad file never aborts the batch.
func (x *Extractor) Extract(root string, entries []*FileEntry) []FileContent {
	contents := make([]FileContent, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(root, filepath.FromSlash(entry.Path))
		data, err := os.ReadFile(full)
		if err != nil {
			x.logger.Warn("Skipping unreadable file",
				zap.String("path", entry.Path),
				zap.Error(err))
			continue
		}
		contents = append(contents, FileContent{
			Path:    entry.Path,
			Content: x.decode(data),
		})
	}
	return contents
}

// decode turns raw bytes into text without ever failing. Valid UTF-8 passes
// through; otherwise the configured fallback applies.
func (x *Extractor) decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if x.latin1Fallback {
		return decodeLatin1(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// decodeLatin1 maps each byte to the Unicode code point of the same value.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

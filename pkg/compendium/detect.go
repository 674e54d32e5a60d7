package compendium

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

// sampleSize is how many leading bytes are examined to classify a file.
// A 1KB sample bounds cost on large files while catching the overwhelming
// majority of binary formats.
const sampleSize = 1024

// IsTextFile classifies a file as text by sampling its first kilobyte.
// A null byte in the sample, or a sample that is not valid UTF-8, means
// binary. Any read failure also yields false; this function never fails.
// An empty file decodes trivially and counts as text.
func IsTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	sample := buf[:n]

	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	return validSample(sample, n == sampleSize)
}

// validSample reports whether the sample decodes as UTF-8. When the sample
// was truncated at the read boundary, up to three trailing bytes of an
// incomplete rune are tolerated.
func validSample(sample []byte, truncated bool) bool {
	if truncated {
		for trim := 0; trim < utf8.UTFMax-1 && len(sample) > 0; trim++ {
			if r, _ := utf8.DecodeLastRune(sample); r != utf8.RuneError {
				break
			}
			sample = sample[:len(sample)-1]
		}
	}
	return utf8.Valid(sample)
}

package compendium

import (
	"fmt"
	"strings"
)

// underlinePadding is added to the path length when sizing the '=' rule
// under each FILE: header (the length of "FILE: ").
const underlinePadding = 6

// separatorWidth is the width of the '-' rule between files.
const separatorWidth = 80

// PlainEncoder renders the compendium as delimited plain text, the
// lowest-common-denominator format for naive line-based re-parsing.
type PlainEncoder struct{}

// Encode implements Encoder. Files are emitted in input order.
func (PlainEncoder) Encode(contents []FileContent) (string, error) {
	var b strings.Builder
	b.WriteString("REPOSITORY CODE COMPENDIUM\n\n")

	for _, fc := range contents {
		fmt.Fprintf(&b, "FILE: %s\n", fc.Path)
		b.WriteString(strings.Repeat("=", len(fc.Path)+underlinePadding))
		b.WriteString("\n\n")
		b.WriteString(fc.Content)
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("-", separatorWidth))
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

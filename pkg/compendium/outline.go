package compendium

import (
	"fmt"
	"strconv"
	"strings"
)

// OutlineEncoder renders the documenter variant: a numbered outline of the
// directory tree (1, 1.1, 1.2, 2, ...) as a preamble, followed by the same
// per-file fenced-block body the Markdown encoder uses.
type OutlineEncoder struct{}

// Encode implements Encoder. The outline is derived from the content paths
// themselves, so preamble and body always agree.
func (OutlineEncoder) Encode(contents []FileContent) (string, error) {
	paths := make([]string, len(contents))
	for i, fc := range contents {
		paths[i] = fc.Path
	}
	tree := BuildTree(paths)

	var b strings.Builder
	b.WriteString("# Directory Documentation\n\n")
	writeOutline(&b, tree, nil)
	b.WriteString("\n")

	for _, fc := range contents {
		fmt.Fprintf(&b, "### File: %s\n\n", fc.Path)
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", bareExtension(fc.Path), fc.Content)
	}
	return b.String(), nil
}

// writeOutline emits one line per node, numbered hierarchically. Directory
// names carry a trailing slash.
func writeOutline(b *strings.Builder, n *TreeNode, trail []int) {
	for i, child := range n.Children {
		number := formatOutlineNumber(append(trail, i+1))
		if child.IsDir {
			fmt.Fprintf(b, "%s %s/\n", number, child.Name)
			writeOutline(b, child, append(trail, i+1))
		} else {
			fmt.Fprintf(b, "%s %s\n", number, child.Name)
		}
	}
}

func formatOutlineNumber(trail []int) string {
	parts := make([]string, len(trail))
	for i, v := range trail {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

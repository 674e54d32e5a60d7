package compendium

import (
	"fmt"
	"sort"
	"strings"
)

// MarkdownEncoder renders the compendium as Markdown: files grouped by
// directory, each file in a fenced code block tagged with its extension.
type MarkdownEncoder struct{}

// Encode implements Encoder. Directories are emitted in sorted order (the
// empty root directory sorts first), files within a directory by full path.
func (MarkdownEncoder) Encode(contents []FileContent) (string, error) {
	var b strings.Builder
	b.WriteString("# Repository Code Compendium\n\n")

	byDir := make(map[string][]FileContent)
	for _, fc := range contents {
		dir := parentDir(fc.Path)
		byDir[dir] = append(byDir[dir], fc)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		if dir != "" {
			fmt.Fprintf(&b, "## Directory: %s\n\n", dir)
		} else {
			b.WriteString("## Root Directory\n\n")
		}

		files := byDir[dir]
		sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
		for _, fc := range files {
			fmt.Fprintf(&b, "### File: %s\n\n", fc.Path)
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", bareExtension(fc.Path), fc.Content)
		}
	}
	return b.String(), nil
}

// bareExtension returns the file's extension without the leading dot, used
// as the fence language tag. Empty when the file has no extension.
func bareExtension(path string) string {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[i+1:]
	}
	return ""
}

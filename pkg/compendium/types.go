// Package compendium implements the file-selection and serialization
// pipeline: directory scanning, text detection, content extraction, and the
// output encoders that turn a repository into a single LLM-ready document.
package compendium

// FileEntry is one file discovered during a scan. Path is relative to the
// scan root with forward-slash separators and is unique within one scan.
// Selected is mutable and governs inclusion at extraction time; how it gets
// toggled (CLI flags, a UI, anything else) is the caller's business.
type FileEntry struct {
	Path     string // root-relative, slash-normalized
	Size     int64  // byte count recorded once at scan time
	Selected bool   // defaults to true
}

// FileContent is one file's materialized text, produced by extraction.
// Content is decoded text; undecodable byte sequences have been replaced,
// never raised.
type FileContent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Inventory is the ordered, mutable collection of scan results. A new scan
// replaces the inventory wholesale; there is no incremental merge.
type Inventory []*FileEntry

// Selected returns the entries currently marked for inclusion, in order.
func (inv Inventory) Selected() []*FileEntry {
	var out []*FileEntry
	for _, e := range inv {
		if e.Selected {
			out = append(out, e)
		}
	}
	return out
}

// SelectAll marks every entry for inclusion.
func (inv Inventory) SelectAll() {
	for _, e := range inv {
		e.Selected = true
	}
}

// DeselectAll clears the selection on every entry.
func (inv Inventory) DeselectAll() {
	for _, e := range inv {
		e.Selected = false
	}
}

// Toggle flips the selection of the entry with the given path and reports
// whether such an entry exists.
func (inv Inventory) Toggle(path string) bool {
	for _, e := range inv {
		if e.Path == path {
			e.Selected = !e.Selected
			return true
		}
	}
	return false
}

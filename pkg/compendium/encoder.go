package compendium

import "fmt"

// Format is the closed set of output encodings.
type Format int

const (
	FormatMarkdown Format = iota
	FormatJSON
	FormatPlain
	FormatOutline
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "plain", "text", "txt":
		return FormatPlain, nil
	case "outline":
		return FormatOutline, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want markdown, json, or plain)", name)
	}
}

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatPlain:
		return "plain"
	case FormatOutline:
		return "outline"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatPlain:
		return ".txt"
	default:
		return ".md"
	}
}

// Encoder serializes an ordered list of file contents into one document.
type Encoder interface {
	Encode(contents []FileContent) (string, error)
}

// EncoderFor returns the encoder implementing the given format.
func EncoderFor(f Format) (Encoder, error) {
	switch f {
	case FormatMarkdown:
		return MarkdownEncoder{}, nil
	case FormatJSON:
		return JSONEncoder{}, nil
	case FormatPlain:
		return PlainEncoder{}, nil
	case FormatOutline:
		return OutlineEncoder{}, nil
	default:
		return nil, fmt.Errorf("no encoder for format %v", f)
	}
}

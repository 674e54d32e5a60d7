package compendium

import "compendex/pkg/gitignore"

// DefaultMaxFileSize is the byte ceiling applied when a ScanConfig does not
// override it (1 MiB).
const DefaultMaxFileSize = 1024 * 1024

// defaultIgnoredDirs are directory basenames never descended into:
// version-control metadata, dependency caches, build output, editor state.
var defaultIgnoredDirs = []string{
	".git", ".github", "node_modules", "__pycache__",
	"venv", ".venv", "env", ".env", "dist", "build",
	".idea", ".vscode", ".gradle", "target", "bin",
	"obj", "out", "ios", "android", "public", "tmp",
}

// defaultIgnoredExtensions are lowercase extensions excluded outright.
// Compound extensions like ".min.js" match against the last two extensions
// of a file name.
var defaultIgnoredExtensions = []string{
	".pyc", ".pyo", ".pyd", ".so", ".dll", ".exe", ".obj", ".o", ".a", ".lib", ".zip",
	".tar", ".gz", ".7z", ".jar", ".war", ".ear", ".class", ".log", ".bin",
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg", ".mp3", ".mp4",
	".avi", ".mov", ".flv", ".wmv", ".pdf", ".doc", ".docx", ".xls", ".xlsx",
	".ppt", ".pptx", ".db", ".sqlite", ".sqlite3", ".dat", ".min.js", ".min.css",
	".ttf", ".woff", ".woff2", ".eot", ".lock",
}

// ScanConfig is the value object consumed by Scan. It carries no hidden
// process-wide state; callers build one (usually from DefaultScanConfig)
// and pass it explicitly.
type ScanConfig struct {
	// IgnoredDirs holds directory basenames that are pruned before descent.
	IgnoredDirs map[string]bool

	// IgnoredExtensions holds lowercase extensions (simple or compound)
	// that exclude a file regardless of content.
	IgnoredExtensions map[string]bool

	// MaxFileSize is the byte ceiling; larger files are skipped even if
	// they are valid text.
	MaxFileSize int64

	// ExcludedFolders and IncludedFolders are root-relative folder paths,
	// slash-normalized. Exclusion prunes the subtree and always wins over
	// inclusion. When IncludedFolders is non-empty, only files inside the
	// named folders and their descendants are kept; root-level files and
	// everything else outside the include set are dropped.
	ExcludedFolders []string
	IncludedFolders []string

	// Ignore, when non-nil, additionally skips any path it matches. Used
	// by the documenter path for .gitignore-style exclusion.
	Ignore *gitignore.Matcher
}

// DefaultScanConfig returns a ScanConfig populated with the default ignore
// sets and size cap. The returned value owns its maps; mutating it does not
// affect other configs.
func DefaultScanConfig() ScanConfig {
	cfg := ScanConfig{
		IgnoredDirs:       make(map[string]bool, len(defaultIgnoredDirs)),
		IgnoredExtensions: make(map[string]bool, len(defaultIgnoredExtensions)),
		MaxFileSize:       DefaultMaxFileSize,
	}
	for _, d := range defaultIgnoredDirs {
		cfg.IgnoredDirs[d] = true
	}
	for _, e := range defaultIgnoredExtensions {
		cfg.IgnoredExtensions[e] = true
	}
	return cfg
}

package compendium

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"
)

// GenerateArgs carries everything one run of the pipeline needs. All fields
// are owned by the caller; the facade holds no state between runs.
type GenerateArgs struct {
	Root   string // repository root; must exist and be a directory
	Output string // output file path; overwritten if present
	Format Format

	Scan ScanConfig

	// Inventory, when non-nil, skips the scan stage and uses the supplied
	// entries (with their current selection) instead. Callers use this
	// after letting a user review and toggle a previously scanned list.
	Inventory Inventory

	// Include and Exclude are post-scan path filters on the inventory.
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp

	// Latin1Fallback selects the documenter decode policy for extraction.
	Latin1Fallback bool
}

// Generator wires Scanner, Extractor, and an Encoder into the one-shot
// scan -> select -> extract -> encode -> write pipeline.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator returns a Generator. A nil logger is replaced with a no-op one.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate runs the pipeline to completion and writes the encoded document
// to args.Output. Stage failures are returned with enough context to report
// to a user; per-file problems inside a stage are logged and skipped.
func (g *Generator) Generate(args GenerateArgs) error {
	if args.Output == "" {
		return fmt.Errorf("no output path given")
	}

	inv := args.Inventory
	if inv == nil {
		scanned, err := NewScanner(g.logger).Scan(args.Root, args.Scan)
		if err != nil {
			return fmt.Errorf("scan stage failed: %w", err)
		}
		inv = scanned
	}

	inv = FilterInventory(inv, args.Include, args.Exclude)
	selected := inv.Selected()
	if len(selected) == 0 {
		return fmt.Errorf("no files selected for inclusion under %s", args.Root)
	}

	extractor := NewExtractor(g.logger)
	if args.Latin1Fallback {
		extractor = extractor.WithLatin1Fallback()
	}
	contents := extractor.Extract(args.Root, selected)
	if len(contents) == 0 {
		return fmt.Errorf("none of the %d selected files could be read", len(selected))
	}

	encoder, err := EncoderFor(args.Format)
	if err != nil {
		return fmt.Errorf("encode stage failed: %w", err)
	}
	document, err := encoder.Encode(contents)
	if err != nil {
		return fmt.Errorf("encode stage failed: %w", err)
	}

	if err := writeDocument(args.Output, document); err != nil {
		return fmt.Errorf("failed to write %s: %w", args.Output, err)
	}

	g.logger.Info("Compendium generated",
		zap.String("output", args.Output),
		zap.Stringer("format", args.Format),
		zap.Int("files", len(contents)))
	return nil
}

// writeDocument writes the encoded document as UTF-8 text, overwriting any
// existing file.
func writeDocument(path, document string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(document); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

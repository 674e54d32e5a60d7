package compendium

import (
	"testing"

	"compendex/pkg/gitignore"
)

func TestScan_GitignoreMatcher(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "main.go", []byte("package main"))
	writeTestFile(t, dir, "debug.log2", []byte("noise"))
	writeTestFile(t, dir, "vendorlib/dep.go", []byte("package dep"))
	writeTestFile(t, dir, "nested/deep/cache.tmp", []byte("x"))

	m := gitignore.NewMatcher(nil)
	m.AddLines("*.log2", "vendorlib/", "**/cache.tmp")

	cfg := DefaultScanConfig()
	cfg.Ignore = m
	inv := scanDir(t, dir, cfg)

	got := paths(inv)
	if len(got) != 1 || got[0] != "main.go" {
		t.Errorf("inventory = %v, want [main.go]", got)
	}
}

func TestScan_GitignoreNegation(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.gen", []byte("x"))
	writeTestFile(t, dir, "keep.gen", []byte("x"))

	m := gitignore.NewMatcher(nil)
	m.AddLines("*.gen", "!keep.gen")

	cfg := DefaultScanConfig()
	cfg.Ignore = m
	inv := scanDir(t, dir, cfg)

	got := paths(inv)
	if len(got) != 1 || got[0] != "keep.gen" {
		t.Errorf("inventory = %v, want [keep.gen]", got)
	}
}

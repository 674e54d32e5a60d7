package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"compendex/pkg/compendium"
	"compendex/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateOpts struct {
	repo           string
	output         string
	format         string
	excludeFolders string
	includeFolders string
	include        string
	exclude        string
	maxFileSizeKB  int64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan a repository and write the compendium document",
	Long: `Generate scans the repository, filters the inventory, extracts the selected
files' contents, and writes them as a single document in the chosen format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format, err := compendium.ParseFormat(pick(generateOpts.format, cfg.Format))
		if err != nil {
			return err
		}

		scanCfg, err := buildScanConfig(cfg)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("max-file-size-kb") {
			scanCfg.MaxFileSize = generateOpts.maxFileSizeKB * 1024
		}
		scanCfg.ExcludedFolders = append(scanCfg.ExcludedFolders, splitList(generateOpts.excludeFolders)...)
		scanCfg.IncludedFolders = splitList(generateOpts.includeFolders)

		include, err := compendium.CompilePatterns(generateOpts.include)
		if err != nil {
			return err
		}
		exclude, err := compendium.CompilePatterns(generateOpts.exclude)
		if err != nil {
			return err
		}

		output := generateOpts.output
		if output == "" {
			output = defaultOutputPath(generateOpts.repo, format)
			rootLogger.Info("No output path given, using default", zap.String("output", output))
		}

		gen := compendium.NewGenerator(rootLogger)
		if err := gen.Generate(compendium.GenerateArgs{
			Root:    generateOpts.repo,
			Output:  output,
			Format:  format,
			Scan:    scanCfg,
			Include: include,
			Exclude: exclude,
		}); err != nil {
			return err
		}

		fmt.Printf("Compendium generated successfully at %s\n", output)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOpts.repo, "repo", ".", "Repository path to scan")
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", "", "Output file path (default <repo-name>_compendium.<ext>)")
	generateCmd.Flags().StringVarP(&generateOpts.format, "format", "f", "", "Output format: markdown, json, or plain")
	generateCmd.Flags().StringVar(&generateOpts.excludeFolders, "exclude-folders", "", "Comma-separated root-relative folders to exclude")
	generateCmd.Flags().StringVar(&generateOpts.includeFolders, "include-folders", "", "Comma-separated root-relative folders to restrict the scan to")
	generateCmd.Flags().StringVar(&generateOpts.include, "include", "", "Comma-separated path patterns (regexp) files must match")
	generateCmd.Flags().StringVar(&generateOpts.exclude, "exclude", "", "Comma-separated path patterns (regexp) that drop files")
	generateCmd.Flags().Int64Var(&generateOpts.maxFileSizeKB, "max-file-size-kb", 1024, "Maximum file size to include, in KB")

	RootCmd.AddCommand(generateCmd)
}

// buildScanConfig folds the ambient configuration into the default scan
// configuration value object.
func buildScanConfig(cfg *config.Config) (compendium.ScanConfig, error) {
	scanCfg := compendium.DefaultScanConfig()
	if cfg.MaxFileSizeKB > 0 {
		scanCfg.MaxFileSize = cfg.MaxFileSizeKB * 1024
	}
	for _, d := range cfg.IgnoreDirs {
		if d = strings.TrimSpace(d); d != "" {
			scanCfg.IgnoredDirs[d] = true
		}
	}
	for _, e := range cfg.IgnoreExts {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			scanCfg.IgnoredExtensions[e] = true
		}
	}
	scanCfg.ExcludedFolders = append(scanCfg.ExcludedFolders, cfg.ExcludeFolders...)
	return scanCfg, nil
}

// defaultOutputPath mirrors the original tool's suggestion: the repository
// basename plus a _compendium suffix and the format's extension.
func defaultOutputPath(repo string, format compendium.Format) string {
	abs, err := filepath.Abs(repo)
	if err != nil {
		abs = repo
	}
	name := filepath.Base(abs)
	if name == "/" || name == "." {
		name = "repository"
	}
	return name + "_compendium" + format.Extension()
}

func splitList(csv string) []string {
	var out []string
	for _, item := range strings.Split(csv, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

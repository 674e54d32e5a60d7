package cmd

import (
	"fmt"
	"path/filepath"

	"compendex/pkg/compendium"
	"compendex/pkg/gitignore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var documentOpts struct {
	repo          string
	output        string
	gitignoreFile string
}

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Write a numbered directory outline with every file's contents",
	Long: `Document is the directory-documenter variant: it honors .gitignore-style
patterns, emits a numbered outline of the tree, and follows it with each
file's contents in a fenced code block. Files that are not valid UTF-8 are
decoded as Latin-1 instead of being skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		scanCfg, err := buildScanConfig(cfg)
		if err != nil {
			return err
		}

		ignorePath := documentOpts.gitignoreFile
		if ignorePath == "" {
			ignorePath = filepath.Join(documentOpts.repo, ".gitignore")
		}
		matcher, err := gitignore.FromFile(ignorePath, rootLogger)
		if err != nil {
			return err
		}
		if matcher.Len() > 0 {
			rootLogger.Info("Loaded ignore patterns",
				zap.String("file", ignorePath),
				zap.Int("patterns", matcher.Len()))
		}
		scanCfg.Ignore = matcher

		output := documentOpts.output
		if output == "" {
			output = defaultOutputPath(documentOpts.repo, compendium.FormatOutline)
			rootLogger.Info("No output path given, using default", zap.String("output", output))
		}

		gen := compendium.NewGenerator(rootLogger)
		if err := gen.Generate(compendium.GenerateArgs{
			Root:           documentOpts.repo,
			Output:         output,
			Format:         compendium.FormatOutline,
			Scan:           scanCfg,
			Latin1Fallback: true,
		}); err != nil {
			return err
		}

		fmt.Printf("Markdown file created: %s\n", output)
		return nil
	},
}

func init() {
	documentCmd.Flags().StringVar(&documentOpts.repo, "repo", ".", "Directory to document")
	documentCmd.Flags().StringVarP(&documentOpts.output, "output", "o", "", "Output file path")
	documentCmd.Flags().StringVar(&documentOpts.gitignoreFile, "gitignore", "", "Ignore-pattern file (default <repo>/.gitignore)")

	RootCmd.AddCommand(documentCmd)
}

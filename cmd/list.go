package cmd

import (
	"fmt"

	"compendex/pkg/compendium"

	"github.com/spf13/cobra"
)

var listOpts struct {
	repo           string
	excludeFolders string
	includeFolders string
	include        string
	exclude        string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the file inventory a scan would select",
	Long: `List scans the repository with the same rules generate uses and prints the
resulting inventory (path, size, selected) without writing a document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		scanCfg, err := buildScanConfig(cfg)
		if err != nil {
			return err
		}
		scanCfg.ExcludedFolders = append(scanCfg.ExcludedFolders, splitList(listOpts.excludeFolders)...)
		scanCfg.IncludedFolders = splitList(listOpts.includeFolders)

		include, err := compendium.CompilePatterns(listOpts.include)
		if err != nil {
			return err
		}
		exclude, err := compendium.CompilePatterns(listOpts.exclude)
		if err != nil {
			return err
		}

		inv, err := compendium.NewScanner(rootLogger).Scan(listOpts.repo, scanCfg)
		if err != nil {
			return err
		}
		inv = compendium.FilterInventory(inv, include, exclude)

		for _, entry := range inv {
			marker := "+"
			if !entry.Selected {
				marker = "-"
			}
			fmt.Printf("%s %8.2f KB  %s\n", marker, float64(entry.Size)/1024, entry.Path)
		}
		fmt.Printf("Found %d files matching criteria.\n", len(inv))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listOpts.repo, "repo", ".", "Repository path to scan")
	listCmd.Flags().StringVar(&listOpts.excludeFolders, "exclude-folders", "", "Comma-separated root-relative folders to exclude")
	listCmd.Flags().StringVar(&listOpts.includeFolders, "include-folders", "", "Comma-separated root-relative folders to restrict the scan to")
	listCmd.Flags().StringVar(&listOpts.include, "include", "", "Comma-separated path patterns (regexp) files must match")
	listCmd.Flags().StringVar(&listOpts.exclude, "exclude", "", "Comma-separated path patterns (regexp) that drop files")

	RootCmd.AddCommand(listCmd)
}

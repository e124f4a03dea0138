package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Verify the links in a built status page",
	Long:  "Parses the built index.html and confirms every internal role link resolves to an existing detail page file.",
	RunE:  runCheckCmd,
}

var checkOutDir string

func init() {
	checkCommand.Flags().StringVarP(&checkOutDir, "out", "o", "dist", "Output directory holding the built site")

	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(_ *cobra.Command, _ []string) error {
	indexPath := filepath.Join(checkOutDir, "index.html")
	f, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", indexPath, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", indexPath, err)
	}

	var checked, broken int
	doc.Find(`a[href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "roles/") {
			return
		}
		checked++
		target := filepath.Join(checkOutDir, filepath.FromSlash(href))
		if _, err := os.Stat(target); err != nil {
			broken++
			fmt.Printf("Broken link: %s (%s)\n", href, strings.TrimSpace(sel.Text()))
		}
	})

	if broken > 0 {
		return fmt.Errorf("%d of %d role link(s) broken", broken, checked)
	}
	fmt.Printf("Checked %d role link(s), all resolve\n", checked)
	return nil
}

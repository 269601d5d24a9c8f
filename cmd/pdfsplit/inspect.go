// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfsplit/internal/outline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect input_pdf",
	Short: "Print the resolved outline hierarchy of a document",
	Long: `Inspect reads a document's bookmarks and prints the resolved hierarchy:
each node's section number, title, level, and computed page range. Use it
to find the right --min-level/--max-level window before splitting.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("yaml", false, "output the outline as YAML")
	inspectCmd.Flags().Bool("json", false, "output the outline as JSON")

	rootCmd.AddCommand(inspectCmd)
}

// inspectNode is the serializable view of an outline node.
type inspectNode struct {
	Number    string        `json:"number" yaml:"number"`
	Title     string        `json:"title" yaml:"title"`
	Level     int           `json:"level" yaml:"level"`
	StartPage int           `json:"start_page" yaml:"start_page"`
	EndPage   int           `json:"end_page" yaml:"end_page"`
	Children  []inspectNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toInspectNodes(nodes []*outline.Node) []inspectNode {
	out := make([]inspectNode, len(nodes))
	for i, n := range nodes {
		out[i] = inspectNode{
			Number:    n.Number,
			Title:     n.DisplayTitle,
			Level:     n.Level,
			StartPage: n.StartPage,
			EndPage:   n.EndPage,
			Children:  toInspectNodes(n.Children),
		}
	}
	return out
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := outline.Open(args[0], 1)
	if err != nil && !errors.Is(err, outline.ErrNoOutline) {
		return fmt.Errorf("%w (check that the file is a valid PDF)", err)
	}
	defer doc.Close()

	out := cmd.OutOrStdout()

	if errors.Is(err, outline.ErrNoOutline) {
		fmt.Fprintf(out, "no bookmarks found (%d pages)\n", doc.PageCount)
		return nil
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	asJSON, _ := cmd.Flags().GetBool("json")

	switch {
	case asYAML:
		data, err := yaml.Marshal(toInspectNodes(doc.Roots))
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	case asJSON:
		data, err := json.MarshalIndent(toInspectNodes(doc.Roots), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		for _, n := range outline.Flatten(doc.Roots) {
			fmt.Fprintf(out, "%s%s %s (pages %d-%d)\n",
				strings.Repeat("  ", n.Level), n.Number, n.DisplayTitle, n.StartPage, n.EndPage)
		}
	}

	min, max, _ := outline.DetectedLevels(doc.Roots)
	fmt.Fprintf(out, "\noutline levels %d-%d, %d pages\n", min, max, doc.PageCount)
	return nil
}

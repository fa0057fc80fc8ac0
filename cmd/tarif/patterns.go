package main

import (
	"fmt"
	"strings"

	"github.com/DaniBVN/Tarif/internal/cli"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
	"github.com/spf13/cobra"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns [axis]",
		Short: "Show the categorization dictionaries",
		Long: `List every axis with its categories and match patterns. Pass an
axis name (Kundetype, Tariftype, Bruger, OverliggendeNet, Rabat) to
show a single dictionary with the full pattern lists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPatterns,
	}

	cmd.Flags().BoolP("verbose", "v", false, "show every pattern, not just counts")

	return cmd
}

func runPatterns(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	dicts := taxonomy.Default()
	if len(args) == 1 {
		var found bool
		for _, dict := range dicts {
			if strings.EqualFold(string(dict.Axis), args[0]) {
				dicts = []taxonomy.Dictionary{dict}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown axis %q", args[0])
		}
		// A single axis is worth reading in full.
		verbose = true
	}

	for _, dict := range dicts {
		fmt.Println(renderDictionary(dict, verbose))
	}

	return nil
}

func renderDictionary(dict taxonomy.Dictionary, verbose bool) string {
	var sb strings.Builder

	for _, cat := range dict.Categories {
		label := cat.Name
		if dict.Fallback == cat.Name {
			label += " (fallback)"
		}
		if verbose {
			sb.WriteString(fmt.Sprintf("%-20s %s\n", label, strings.Join(cat.Patterns, ", ")))
		} else {
			sb.WriteString(fmt.Sprintf("%-20s %d patterns\n", label, len(cat.Patterns)))
		}
	}
	sb.WriteString(cli.SubtleStyle.Render(
		fmt.Sprintf("%d categories, %d patterns", len(dict.Categories), dict.PatternCount())))

	return cli.RenderBox(string(dict.Axis), sb.String())
}

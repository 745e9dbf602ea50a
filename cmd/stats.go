package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/LaplaceYoung/pixelcraft/internal/report"
	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats <report.json>",
	Short: "Display bead totals for a generate report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 0, "only list the N most used colours")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	r, err := report.ReadJSON(args[0])
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	if r.Version != report.SupportedVersion {
		return fmt.Errorf("unsupported report version: %d", r.Version)
	}
	r.ComputeTotals()
	return printStats(r)
}

type colorTotal struct {
	id, name, hex string
	count         int
}

// shoppingList merges usage across items, most used first, ties by id.
func shoppingList(r *report.Report) []colorTotal {
	byID := map[string]*colorTotal{}
	for _, it := range r.Items {
		for _, u := range it.Usage {
			ct, ok := byID[u.ID]
			if !ok {
				ct = &colorTotal{id: u.ID, name: u.Name, hex: u.Hex}
				byID[u.ID] = ct
			}
			ct.count += u.Count
		}
	}
	list := make([]colorTotal, 0, len(byID))
	for _, ct := range byID {
		list = append(list, *ct)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].id < list[j].id
	})
	return list
}

func printStats(r *report.Report) error {
	fmt.Println()
	fmt.Printf("  Report version:   %d\n", r.Version)
	fmt.Printf("  Generated:        %s\n", r.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", r.Profile)
	fmt.Printf("  Catalog:          %s\n", r.Catalog)
	fmt.Printf("  Grid width:       %d\n", r.TargetWidth)
	if r.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", r.BuildInfo.Workers)
		fmt.Printf("  Active colours:   %d (%d disabled)\n", r.BuildInfo.ActiveColors, len(r.BuildInfo.DisabledColors))
	}
	fmt.Println()

	fmt.Printf("  Images:           %d\n", r.Totals.Images)
	fmt.Printf("  Beads:            %d\n", r.Totals.Beads)
	fmt.Printf("  Colours used:     %d\n", r.Totals.Colors)
	fmt.Println()

	list := shoppingList(r)
	if statsTop > 0 && statsTop < len(list) {
		list = list[:statsTop]
	}
	fmt.Println("  Shopping list:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, ct := range list {
		fmt.Fprintf(tw, "    %s\t%s\t%s\t%d\t\n", ct.id, ct.name, ct.hex, ct.count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()

	var warnings []string
	for key, it := range r.Items {
		if it.Beads != it.Width*it.Height-it.Dropped {
			warnings = append(warnings, fmt.Sprintf("item %q: %d beads for a %dx%d grid", key, it.Beads, it.Width, it.Height))
		}
		if it.Dropped > 0 {
			warnings = append(warnings, fmt.Sprintf("item %q: %d cells with unknown colours", key, it.Dropped))
		}
	}
	if len(warnings) > 0 {
		sort.Strings(warnings)
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/LaplaceYoung/pixelcraft/internal/catalog"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/spf13/cobra"
)

var (
	paletteCatalog  string
	paletteBrand    string
	paletteSearch   string
	paletteDisable  []string
	paletteExport   string
	paletteShowOnly bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List, search or export bead colours",
	Long: `Lists the colours of a built-in catalog (perler, artkal, hama, all) or
of a catalog file. Use --export to write an editable catalog file; set its
"disabled" list to the ids you do not own and pass it to generate --catalog.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteCatalog, "catalog", "c", "perler", "built-in catalog name or catalog file")
	paletteCmd.Flags().StringVar(&paletteBrand, "brand", "", "only colours of this brand")
	paletteCmd.Flags().StringVarP(&paletteSearch, "search", "s", "", "filter by id or name (case-insensitive)")
	paletteCmd.Flags().StringSliceVar(&paletteDisable, "disable", nil, "colour ids you do not own")
	paletteCmd.Flags().StringVar(&paletteExport, "export", "", "write the catalog to this file")
	paletteCmd.Flags().BoolVar(&paletteShowOnly, "owned", false, "hide disabled colours")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(_ *cobra.Command, _ []string) error {
	pal, name, err := loadPalette(paletteCatalog, paletteBrand, paletteDisable)
	if err != nil {
		return err
	}

	if paletteExport != "" {
		if err := catalog.WriteJSON(catalog.New(name, pal), paletteExport); err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}
		logger.Info("catalog written", "path", paletteExport, "colors", pal.Len())
		fmt.Printf("  ✓ wrote %d colours to %s\n", pal.Len(), paletteExport)
		return nil
	}

	colors := pal.Search(paletteSearch)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tBRAND\tHEX\tOWNED")
	shown := 0
	for _, c := range colors {
		owned := !pal.IsDisabled(c.ID)
		if paletteShowOnly && !owned {
			continue
		}
		mark := "✓"
		if !owned {
			mark = "·"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Brand, c.Hex, mark)
		shown++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n  %d of %d colours (%d active) in %s\n", shown, pal.Len(), len(pal.Active()), name)
	return nil
}

// loadPalette resolves a built-in catalog name or a catalog file, applies
// the brand filter, then disables the given ids.
func loadPalette(source, brand string, disable []string) (*palette.Palette, string, error) {
	var (
		pal  *palette.Palette
		name = source
	)
	if palette.IsBuiltin(source) {
		pal = palette.Builtin(source)
	} else {
		f, err := catalog.Load(source)
		if err != nil {
			return nil, "", err
		}
		pal, err = f.Palette()
		if err != nil {
			return nil, "", fmt.Errorf("catalog %s: %w", source, err)
		}
		if f.Name != "" {
			name = f.Name
		}
		logger.Debug("catalog loaded", "path", source, "colors", pal.Len(), "checksum", f.Checksum)
	}

	if brand != "" {
		b, err := palette.ParseBrand(brand)
		if err != nil {
			return nil, "", err
		}
		pal = pal.FilterBrand(b)
		if pal.Len() == 0 {
			return nil, "", fmt.Errorf("catalog %s has no %s colours", name, b)
		}
	}

	for _, id := range disable {
		if _, ok := pal.Lookup(id); !ok {
			logger.Warn("ignoring unknown colour id", "id", id)
			continue
		}
		pal.SetDisabled(id, true)
	}
	return pal, name, nil
}

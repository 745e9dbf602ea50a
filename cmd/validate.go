package cmd

import (
	"fmt"

	"github.com/LaplaceYoung/pixelcraft/internal/catalog"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Validate a colour catalog file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := catalog.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "path", path, "checksum", f.Checksum)

	errs := catalog.Validate(f)
	if len(errs) == 0 {
		fmt.Println("  ✓ Catalog is valid")
		fmt.Printf("  ✓ %d colours, %d disabled, checksum %s\n", len(f.Colors), len(f.Disabled), f.Checksum)
		return nil
	}

	fmt.Printf("  ✗ Catalog has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

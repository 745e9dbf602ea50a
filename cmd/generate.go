package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/LaplaceYoung/pixelcraft/internal/downsample"
	"github.com/LaplaceYoung/pixelcraft/internal/encoder"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/pipeline"
	"github.com/LaplaceYoung/pixelcraft/internal/profile"
	"github.com/LaplaceYoung/pixelcraft/internal/report"
	"github.com/spf13/cobra"
)

var (
	genPreset  string
	genWidth   int
	genCatalog string
	genBrand   string
	genDisable []string
	genWorkers int
	genFormat  string
	genGrid    bool
	genOut     string
	genReport  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <image_or_dir>",
	Short: "Build bead patterns and colour usage for images",
	Long: `Shrinks each image to the target grid width, keeps the aspect ratio,
and maps every cell to the closest owned bead colour.

A directory input is processed in parallel; images that fail are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genPreset, "preset", "p", "default", "size preset: default, keychain, pegboard, midi, poster")
	f.IntVarP(&genWidth, "width", "w", 0, fmt.Sprintf("grid width in beads (%d-%d, overrides preset)", profile.MinWidth, profile.MaxWidth))
	f.StringVarP(&genCatalog, "catalog", "c", "", "built-in catalog name or catalog file (default from preset)")
	f.StringVar(&genBrand, "brand", "", "only use colours of this brand")
	f.StringSliceVar(&genDisable, "disable", nil, "colour ids you do not own")
	f.IntVar(&genWorkers, "workers", 0, "parallel workers (0 = NumCPU)")
	f.StringVarP(&genFormat, "format", "f", "text", "output format: text, json, csv")
	f.BoolVar(&genGrid, "grid", false, "include the colour id grid in the output")
	f.StringVarP(&genOut, "out", "o", "", "write output to this file instead of stdout")
	f.StringVar(&genReport, "report", "", "also write the JSON report to this file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
	input := args[0]

	if !profile.Exists(genPreset) {
		logger.Warn("unknown preset, using default", "preset", genPreset)
	}
	prof := profile.Get(genPreset)

	width := prof.EffectiveWidth(genWidth)
	if genWidth > 0 && width != genWidth {
		logger.Warn("width clamped", "requested", genWidth, "width", width)
	}

	source := genCatalog
	if source == "" {
		source = prof.Catalog
	}
	brand := genBrand
	if brand == "" && genCatalog == "" {
		brand = prof.Brand
	}
	pal, catName, err := loadPalette(source, brand, genDisable)
	if err != nil {
		return err
	}

	enc := encoder.NewRegistry().Get(genFormat)
	if enc == nil {
		return fmt.Errorf("unknown format %q (%s)", genFormat, encoder.NewRegistry())
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat %s: %w", input, err)
	}

	start := time.Now()
	var doc encoder.Document
	if info.IsDir() {
		b, err := pipeline.New(pipeline.Config{
			Input:       input,
			Palette:     pal,
			TargetWidth: width,
			Workers:     genWorkers,
			Profile:     prof.Name,
			Catalog:     catName,
			Logger:      logger,
		}).Run()
		if err != nil {
			return err
		}
		doc = encoder.Document{Report: b.Report, Patterns: b.Patterns}
	} else {
		doc, err = generateOne(input, width, pal, prof.Name, catName)
		if err != nil {
			return err
		}
	}
	doc.ShowGrid = genGrid

	logger.Info("generate complete",
		"images", doc.Report.Totals.Images,
		"beads", doc.Report.Totals.Beads,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if genReport != "" {
		if err := report.WriteJSON(doc.Report, genReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug("report written", "path", genReport)
	}

	var w io.Writer = os.Stdout
	if genOut != "" {
		f, err := os.Create(genOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return enc.Encode(w, doc)
}

// generateOne builds a single image through a session, the same path the
// interactive front end takes.
func generateOne(path string, width int, pal *palette.Palette, profName, catName string) (encoder.Document, error) {
	src, err := pipeline.FileSource(path)
	if err != nil {
		return encoder.Document{}, err
	}
	img, err := downsample.Open(path)
	if err != nil {
		return encoder.Document{}, err
	}

	s, err := pipeline.NewSession(pal, pipeline.SessionConfig{
		TargetWidth: width,
		Workers:     genWorkers,
		Logger:      logger,
	})
	if err != nil {
		return encoder.Document{}, err
	}
	if err := s.SetImage(img); err != nil {
		return encoder.Document{}, err
	}

	b := img.Bounds()
	r := report.New(profName, catName, width)
	r.Items[src.Key] = report.NewItem(report.SourceInfo{
		Path:   src.RelPath,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: src.Format,
		Size:   src.Size,
	}, s.Pattern(), s.Stats())
	workers := genWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	r.BuildInfo = &report.BuildInfo{
		Workers:        workers,
		ActiveColors:   len(pal.Active()),
		DisabledColors: pal.DisabledIDs(),
	}
	r.ComputeTotals()

	return encoder.Document{
		Report:   r,
		Patterns: map[string]*pattern.Pattern{src.Key: s.Pattern()},
	}, nil
}

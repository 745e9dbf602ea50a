package pipeline

import (
	"fmt"

	"github.com/LaplaceYoung/pixelcraft/internal/downsample"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/report"
	"github.com/LaplaceYoung/pixelcraft/internal/stats"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key     string
	item    report.Item
	pattern *pattern.Pattern
	err     error
}

// processImage handles a single source image: decode, build, count.
// Rows are matched serially; parallelism is across images.
func processImage(src Source, width int, active []palette.Color, pal stats.Resolver) processResult {
	result := processResult{key: src.Key}

	img, err := downsample.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	p, err := pattern.Build(img, width, active, pattern.WithWorkers(1))
	if err != nil {
		result.err = fmt.Errorf("build %s: %w", src.RelPath, err)
		return result
	}

	b := img.Bounds()
	result.pattern = p
	result.item = report.NewItem(report.SourceInfo{
		Path:   src.RelPath,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: src.Format,
		Size:   src.Size,
	}, p, stats.Aggregate(p, pal))
	return result
}

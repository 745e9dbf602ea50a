package pipeline

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/report"
	"github.com/hashicorp/go-hclog"
)

// Config holds all parameters for a batch pipeline run.
type Config struct {
	Input       string // image file or directory
	Palette     *palette.Palette
	TargetWidth int
	Workers     int
	Profile     string
	Catalog     string
	Logger      hclog.Logger
}

// Pipeline builds patterns for every image under Input.
type Pipeline struct {
	cfg Config
	log hclog.Logger
}

// Batch is the outcome of Run.
type Batch struct {
	Report   *report.Report
	Patterns map[string]*pattern.Pattern // keyed like Report.Items
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return &Pipeline{
		cfg: cfg,
		log: cfg.Logger.Named("pipeline"),
	}
}

// Run executes the batch and returns the report. Images that fail are
// logged and skipped; Run only fails when nothing could be built.
func (p *Pipeline) Run() (*Batch, error) {
	if p.cfg.Palette == nil {
		return nil, errors.New("no palette configured")
	}
	active := p.cfg.Palette.Active()
	if len(active) == 0 {
		return nil, ErrEmptyActivePalette
	}

	// Step 1: Find images.
	sources, err := p.sources()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.Input)
	}
	p.log.Debug("found images", "count", len(sources), "active_colors", len(active))

	// Step 2: Build patterns in parallel.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			p.log.Debug("processing", "key", s.Key)
			results[idx] = processImage(s, p.cfg.TargetWidth, active, p.cfg.Palette)
			if results[idx].err == nil {
				p.log.Debug("done", "key", s.Key,
					"size", fmt.Sprintf("%dx%d", results[idx].item.Width, results[idx].item.Height),
					"colors", len(results[idx].item.Usage))
			}
		}(i, src)
	}
	wg.Wait()

	// Step 3: Collect results into the report.
	r := report.New(p.cfg.Profile, p.cfg.Catalog, p.cfg.TargetWidth)
	b := &Batch{Report: r, Patterns: make(map[string]*pattern.Pattern)}

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		r.Items[res.key] = res.item
		b.Patterns[res.key] = res.pattern
	}

	// Report errors but don't fail the entire batch for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			p.log.Error("image failed", "error", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		p.log.Warn("some images had errors", "failed", len(errs), "total", len(sources))
	}

	r.BuildInfo = &report.BuildInfo{
		Workers:        p.cfg.Workers,
		ActiveColors:   len(active),
		DisabledColors: p.cfg.Palette.DisabledIDs(),
	}
	r.ComputeTotals()
	return b, nil
}

func (p *Pipeline) sources() ([]Source, error) {
	info, err := os.Stat(p.cfg.Input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return ScanImages(p.cfg.Input)
	}
	src, err := FileSource(p.cfg.Input)
	if err != nil {
		return nil, err
	}
	return []Source{src}, nil
}

package pipeline

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/LaplaceYoung/pixelcraft/internal/downsample"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/profile"
	"github.com/LaplaceYoung/pixelcraft/internal/stats"
	"github.com/hashicorp/go-hclog"
)

var (
	// ErrEmptyActivePalette is returned when every colour is disabled.
	// The session keeps its previous pattern in that case.
	ErrEmptyActivePalette = errors.New("no active colors in palette")
	// ErrNoImage is returned by Regenerate before an image is set.
	ErrNoImage = errors.New("no source image")
)

// SessionConfig holds the initial parameters of an interactive session.
type SessionConfig struct {
	TargetWidth int
	Workers     int
	Logger      hclog.Logger
}

// Session owns the palette, the source image and the current pattern for
// one user. Every setter regenerates the pattern from scratch when an image
// is loaded; the pattern and its stats are swapped together. A Session is
// not safe for concurrent use.
type Session struct {
	pal     *palette.Palette
	img     image.Image
	width   int
	workers int
	log     hclog.Logger

	current *pattern.Pattern
	usage   stats.Stats
}

// NewSession creates a session over pal. The palette is owned by the
// session from here on.
func NewSession(pal *palette.Palette, cfg SessionConfig) (*Session, error) {
	if pal == nil {
		return nil, errors.New("nil palette")
	}
	if err := checkWidth(cfg.TargetWidth); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return &Session{
		pal:     pal,
		width:   cfg.TargetWidth,
		workers: cfg.Workers,
		log:     cfg.Logger.Named("session"),
	}, nil
}

func checkWidth(w int) error {
	if w < profile.MinWidth || w > profile.MaxWidth {
		return fmt.Errorf("%w: %d (want %d-%d)", downsample.ErrInvalidTargetWidth, w, profile.MinWidth, profile.MaxWidth)
	}
	return nil
}

// Palette returns the session palette.
func (s *Session) Palette() *palette.Palette { return s.pal }

// TargetWidth returns the current grid width.
func (s *Session) TargetWidth() int { return s.width }

// Pattern returns the current pattern, nil before the first build.
func (s *Session) Pattern() *pattern.Pattern { return s.current }

// Stats returns the usage stats of the current pattern.
func (s *Session) Stats() stats.Stats { return s.usage }

// SetImage replaces the source image and regenerates.
func (s *Session) SetImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", downsample.ErrImageDecode)
	}
	s.img = img
	return s.Regenerate()
}

// SetTargetWidth changes the grid width and regenerates.
func (s *Session) SetTargetWidth(w int) error {
	if err := checkWidth(w); err != nil {
		return err
	}
	s.width = w
	return s.regenerateIfLoaded()
}

// ToggleColor flips ownership of a colour and regenerates.
func (s *Session) ToggleColor(id string) error {
	s.pal.Toggle(id)
	return s.regenerateIfLoaded()
}

// SetColorDisabled sets ownership of a colour and regenerates.
func (s *Session) SetColorDisabled(id string, disabled bool) error {
	s.pal.SetDisabled(id, disabled)
	return s.regenerateIfLoaded()
}

func (s *Session) regenerateIfLoaded() error {
	if s.img == nil {
		return nil
	}
	return s.Regenerate()
}

// Regenerate rebuilds the pattern from the current image, width and
// active palette.
func (s *Session) Regenerate() error {
	if s.img == nil {
		return ErrNoImage
	}
	active := s.pal.Active()
	if len(active) == 0 {
		s.log.Warn("all colors disabled, keeping previous pattern")
		return ErrEmptyActivePalette
	}

	start := time.Now()
	p, err := pattern.Build(s.img, s.width, active, pattern.WithWorkers(s.workers))
	if err != nil {
		return err
	}
	s.current = p
	s.usage = stats.Aggregate(p, s.pal)

	s.log.Debug("pattern regenerated",
		"width", p.Width, "height", p.Height,
		"active", len(active), "colors_used", s.usage.Len(),
		"fingerprint", p.Fingerprint(), "elapsed", time.Since(start))
	return nil
}

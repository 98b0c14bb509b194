package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"brokerdocs/internal/document"
	"brokerdocs/internal/fileutil"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/services"
)

// ErrNoSourceFiles reports an empty source set.
var ErrNoSourceFiles = errors.New("no source files")

// TextExtractor supplies the text content of a source document.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// RunConfig controls a Runner.
type RunConfig struct {
	TargetDir    string
	VerifyCopies bool
	// ClearTarget empties TargetDir (keeping .gitkeep files) before copying.
	ClearTarget bool
	// DryRun plans every copy without touching the target tree.
	DryRun bool
}

// Result describes one organized document.
type Result struct {
	Source   string
	Target   string
	Relative string
	Type     document.Type
	Code     string
	Date     string
}

// Skip describes a document that was left unorganized.
type Skip struct {
	Source string
	Reason Miss
	Detail string
}

// Summary aggregates a run.
type Summary struct {
	DryRun   bool
	Sources  int
	Copied   int
	ByType   map[document.Type]int
	ByMiss   map[Miss]int
	Results  []Result
	Skipped  []Skip
	Duration time.Duration
}

func newSummary(dryRun bool, sources int) *Summary {
	return &Summary{
		DryRun:  dryRun,
		Sources: sources,
		ByType:  make(map[document.Type]int),
		ByMiss:  make(map[Miss]int),
	}
}

// Runner processes a batch of source files sequentially.
type Runner struct {
	engine    *Engine
	extractor TextExtractor
	cfg       RunConfig
	logger    *slog.Logger
	exists    func(path string) bool
}

// NewRunner builds a runner around an engine and a text extractor.
func NewRunner(engine *Engine, extractor TextExtractor, cfg RunConfig, logger *slog.Logger) *Runner {
	return &Runner{
		engine:    engine,
		extractor: extractor,
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "runner"),
		exists:    fileutil.Exists,
	}
}

// Run classifies and copies every source in lexical path order. Misses are
// recorded in the summary; filesystem failures abort the run. Cancellation is
// honoured between documents and leaves finished copies in place.
func (r *Runner) Run(ctx context.Context, sources []string) (*Summary, error) {
	started := time.Now()
	logger := logging.WithContext(ctx, r.logger)
	if len(sources) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "runner", "collect sources", "source directory holds no PDF files", ErrNoSourceFiles)
	}

	ordered := append([]string(nil), sources...)
	sort.Strings(ordered)
	summary := newSummary(r.cfg.DryRun, len(ordered))
	defer func() { summary.Duration = time.Since(started) }()

	if r.cfg.ClearTarget && !r.cfg.DryRun {
		if err := fileutil.ClearDirectory(r.cfg.TargetDir); err != nil {
			return summary, services.Wrap(services.ErrFilesystem, "runner", "clear target", r.cfg.TargetDir, err)
		}
		logger.Info("cleared target directory", logging.String("target", r.cfg.TargetDir))
	}

	reservations := NewReservations()
	probe := reservations.Probe(r.exists)
	if r.cfg.ClearTarget && r.cfg.DryRun {
		// The real run would start from an empty tree.
		probe = reservations.Reserved
	}

	for _, source := range ordered {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", logging.Int("processed", summary.Copied+len(summary.Skipped)), logging.Int("total", summary.Sources))
			return summary, err
		}
		docCtx := services.WithDocument(ctx, source)
		docLogger := logging.WithContext(docCtx, r.logger)

		text, err := r.extractor.ExtractText(docCtx, source)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			docLogger.Warn("text extraction failed; document skipped", logging.Error(err))
			summary.skip(source, MissExtractionFailed, err.Error())
			continue
		}

		plan, miss := r.engine.ProcessOne(document.Source{Path: source, Text: text})
		if miss != "" {
			docLogger.Debug("document not classified", logging.String("reason", string(miss)))
			summary.skip(source, miss, "")
			continue
		}

		targetDir := filepath.Join(r.cfg.TargetDir, filepath.FromSlash(plan.Directory))
		plan.FinalFilename = Dedupe(targetDir, plan.BaseFilename, plan.Extension, probe)
		targetPath := filepath.Join(targetDir, plan.FinalFilename)
		reservations.Reserve(targetPath)

		if !r.cfg.DryRun {
			if err := r.copy(source, targetDir, targetPath); err != nil {
				return summary, err
			}
		}

		docLogger.Info("document organized",
			logging.String("type", string(plan.Classification.Type)),
			logging.String("code", plan.Classification.Code),
			logging.String("target", plan.RelativePath()),
			logging.Bool("dry_run", r.cfg.DryRun),
		)
		summary.add(plan, targetPath)
	}

	return summary, nil
}

func (r *Runner) copy(source, targetDir, targetPath string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, "runner", "create directory", targetDir, err)
	}
	copyFn := fileutil.CopyFile
	if r.cfg.VerifyCopies {
		copyFn = fileutil.CopyFileVerified
	}
	if err := copyFn(source, targetPath); err != nil {
		return services.Wrap(services.ErrFilesystem, "runner", "copy", fmt.Sprintf("%s -> %s", source, targetPath), err)
	}
	return nil
}

func (s *Summary) add(plan *Plan, target string) {
	s.Copied++
	s.ByType[plan.Classification.Type]++
	s.Results = append(s.Results, Result{
		Source:   plan.SourcePath,
		Target:   target,
		Relative: plan.RelativePath(),
		Type:     plan.Classification.Type,
		Code:     plan.Classification.Code,
		Date:     plan.Classification.Date,
	})
}

func (s *Summary) skip(source string, reason Miss, detail string) {
	s.ByMiss[reason]++
	s.Skipped = append(s.Skipped, Skip{Source: source, Reason: reason, Detail: detail})
}

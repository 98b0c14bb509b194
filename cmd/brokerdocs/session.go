package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/config"
	"brokerdocs/internal/fileutil"
	"brokerdocs/internal/language"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/organizer"
	"brokerdocs/internal/pdftext"
	"brokerdocs/internal/preflight"
	"brokerdocs/internal/services"
	"brokerdocs/internal/translation"
)

// selectionFlags are the run-shaping flags shared by run, plan and inspect.
// Unset flags fall back to the configuration file.
type selectionFlags struct {
	broker    string
	lang      string
	groupType bool
	groupCode bool
	keepFiles bool
	source    string
	target    string
}

func (f *selectionFlags) register(cmd *cobra.Command, withPaths bool) {
	cmd.Flags().StringVarP(&f.broker, "broker", "b", "", "Broker that issued the documents")
	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "Language of the documents")
	cmd.Flags().BoolVarP(&f.groupType, "group-type", "t", false, "Group documents by type")
	cmd.Flags().BoolVarP(&f.groupCode, "group-code", "g", false, "Group documents by ISIN or ticker")
	if withPaths {
		cmd.Flags().BoolVarP(&f.keepFiles, "keep-files", "k", false, "Keep files already in the target directory")
		cmd.Flags().StringVar(&f.source, "source", "", "Source directory (overrides paths.source_dir)")
		cmd.Flags().StringVar(&f.target, "target", "", "Target directory (overrides paths.target_dir)")
	}
}

// session is a fully resolved run: config with flag overrides applied, the
// validated dictionary and a ready engine.
type session struct {
	cfg    config.Config
	broker broker.Broker
	lang   language.Language
	dict   *translation.Dictionary
	engine *organizer.Engine
	logger *slog.Logger
}

func (c *commandContext) newSession(cmd *cobra.Command, flags *selectionFlags) (*session, error) {
	base, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := applyFlags(cmd, &cfg, flags); err != nil {
		return nil, err
	}

	b, err := resolveBroker(cfg.Run.Broker)
	if err != nil {
		return nil, err
	}
	lang, err := resolveLanguage(cfg.Run.Language)
	if err != nil {
		return nil, err
	}

	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}

	dict, err := translation.Select(b, lang.Code, cfg.Paths.TranslationsDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("translation loaded",
		logging.String("broker", string(b)),
		logging.String("language", lang.Code),
		logging.String("source", dict.Source),
	)

	opts := organizer.Options{GroupByType: cfg.Run.GroupByType, GroupByCode: cfg.Run.GroupByCode}
	return &session{
		cfg:    cfg,
		broker: b,
		lang:   lang,
		dict:   dict,
		engine: organizer.NewEngine(dict, b, lang, opts, logger),
		logger: logger,
	}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *selectionFlags) error {
	changed := cmd.Flags().Changed
	if changed("broker") {
		cfg.Run.Broker = strings.ToLower(strings.TrimSpace(flags.broker))
	}
	if changed("lang") {
		cfg.Run.Language = strings.ToLower(strings.TrimSpace(flags.lang))
	}
	if changed("group-type") {
		cfg.Run.GroupByType = flags.groupType
	}
	if changed("group-code") {
		cfg.Run.GroupByCode = flags.groupCode
	}
	if changed("keep-files") {
		cfg.Run.KeepOldFiles = flags.keepFiles
	}
	if changed("source") {
		path, err := config.ExpandPath(flags.source)
		if err != nil {
			return fmt.Errorf("resolve --source: %w", err)
		}
		cfg.Paths.SourceDir = path
	}
	if changed("target") {
		path, err := config.ExpandPath(flags.target)
		if err != nil {
			return fmt.Errorf("resolve --target: %w", err)
		}
		cfg.Paths.TargetDir = path
	}
	if cfg.Paths.SourceDir == cfg.Paths.TargetDir {
		return services.Wrap(services.ErrConfiguration, "cli", "paths", "source and target directories must differ", nil)
	}
	return nil
}

func (s *session) preflight() error {
	results := preflight.RunAll(preflight.Inputs{
		SourceDir:       s.cfg.Paths.SourceDir,
		TargetDir:       s.cfg.Paths.TargetDir,
		TranslationsDir: s.cfg.Paths.TranslationsDir,
		Broker:          s.broker,
		Language:        s.lang.Code,
	})
	return preflight.FirstFailure(results)
}

// sources lists the PDFs of the source directory and warns about files that
// carry a .pdf extension without PDF content.
func (s *session) sources() ([]string, error) {
	pdfs, rejected, err := fileutil.ListPDFs(s.cfg.Paths.SourceDir)
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "cli", "list sources", s.cfg.Paths.SourceDir, err)
	}
	for _, path := range rejected {
		logging.WarnWithContext(s.logger, "file is not a PDF; skipped", "not_a_pdf",
			logging.String(logging.FieldDocument, path),
			logging.String(logging.FieldImpact, "file is not organized"),
		)
	}
	return pdfs, nil
}

func (s *session) runner(dryRun bool) *organizer.Runner {
	return organizer.NewRunner(s.engine, pdftext.New(s.cfg.Extraction.MaxPages), organizer.RunConfig{
		TargetDir:    s.cfg.Paths.TargetDir,
		VerifyCopies: s.cfg.Extraction.VerifyCopies,
		ClearTarget:  !s.cfg.Run.KeepOldFiles,
		DryRun:       dryRun,
	}, s.logger)
}

package organizer

import (
	"log/slog"
	"path"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/classify"
	"brokerdocs/internal/document"
	"brokerdocs/internal/extract"
	"brokerdocs/internal/language"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/translation"
)

// Extension is the file extension of every organized document.
const Extension = ".pdf"

// Miss explains why a document was left unorganized. The zero value means
// the document was classified.
type Miss string

const (
	MissDateNotFound     Miss = "date_not_found"
	MissNoIndicator      Miss = "no_indicator_matched"
	MissCodeNotFound     Miss = "code_not_found"
	MissDateUnparseable  Miss = "date_unparseable"
	MissExtractionFailed Miss = "extraction_failed"
)

// Misses lists every reason in reporting order.
func Misses() []Miss {
	return []Miss{MissExtractionFailed, MissDateNotFound, MissNoIndicator, MissCodeNotFound, MissDateUnparseable}
}

// Options selects the directory grouping.
type Options struct {
	GroupByType bool
	GroupByCode bool
}

// Plan is the resolved target of one document. FinalFilename stays empty
// until the run deduplicates it against the target tree.
type Plan struct {
	SourcePath     string
	Classification document.Classification
	Directory      string
	BaseFilename   string
	FinalFilename  string
	Extension      string
}

// RelativePath joins Directory and FinalFilename with slashes.
func (p *Plan) RelativePath() string {
	return path.Join(p.Directory, p.FinalFilename)
}

// Engine classifies single documents and resolves their target names.
type Engine struct {
	extractor  *extract.Extractor
	classifier *classify.Classifier
	paths      *PathResolver
	opts       Options
	logger     *slog.Logger
}

// NewEngine wires the extractor, classifier and path resolver for one broker
// and language. The dictionary must already be validated.
func NewEngine(dict *translation.Dictionary, b broker.Broker, lang language.Language, opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		extractor:  extract.New(lang.DateLabel),
		classifier: classify.New(dict, b, lang, logger),
		paths:      NewPathResolver(dict, lang, logger),
		opts:       opts,
		logger:     logging.NewComponentLogger(logger, "organizer"),
	}
}

// Classify extracts the date, the type and the code, in that order; the first
// missing fact decides the Miss.
func (e *Engine) Classify(text string) (document.Classification, Miss) {
	date, ok := e.extractor.Date(text)
	if !ok {
		return document.Classification{}, MissDateNotFound
	}
	t, ok := e.classifier.Classify(text)
	if !ok {
		return document.Classification{}, MissNoIndicator
	}
	code, ok := e.extractor.Code(text, t)
	if !ok {
		return document.Classification{}, MissCodeNotFound
	}
	return document.Classification{Type: t, Code: code, Date: date}, ""
}

// ProcessOne classifies doc and builds its plan. A non-empty Miss means no
// plan was produced; misses are never errors.
func (e *Engine) ProcessOne(doc document.Source) (*Plan, Miss) {
	result, miss := e.Classify(doc.Text)
	if miss != "" {
		return nil, miss
	}
	base, err := e.paths.Filename(result.Code, result.Date)
	if err != nil {
		e.logger.Debug("date rejected", logging.String(logging.FieldDocument, doc.Path), logging.Error(err))
		return nil, MissDateUnparseable
	}
	return &Plan{
		SourcePath:     doc.Path,
		Classification: result,
		Directory:      e.paths.Directory(result.Type, result.Code, e.opts.GroupByType, e.opts.GroupByCode),
		BaseFilename:   base,
		Extension:      Extension,
	}, ""
}

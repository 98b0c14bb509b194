package organizer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"brokerdocs/internal/document"
	"brokerdocs/internal/language"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/services"
	"brokerdocs/internal/textutil"
	"brokerdocs/internal/translation"
)

const filenameDateLayout = "20060102"

// PathResolver turns classification results into target names.
type PathResolver struct {
	dict   *translation.Dictionary
	lang   language.Language
	logger *slog.Logger
}

// NewPathResolver builds a resolver for one dictionary and language.
func NewPathResolver(dict *translation.Dictionary, lang language.Language, logger *slog.Logger) *PathResolver {
	return &PathResolver{dict: dict, lang: lang, logger: logging.NewComponentLogger(logger, "paths")}
}

// Filename returns "{code}_{YYYYMMDD}" for a raw date as captured by the
// extractor. Dates that do not form a real calendar day are rejected.
func (r *PathResolver) Filename(code, rawDate string) (string, error) {
	parsed, err := time.Parse(r.lang.DateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "paths", "parse date", fmt.Sprintf("unparseable date %q", rawDate), err)
	}
	return textutil.SanitizeSegment(code) + "_" + parsed.Format(filenameDateLayout), nil
}

// Directory returns the slash-separated directory relative to the target
// root: [parent label]/[type label]/[code]. Segments whose label is missing
// are omitted with a warning; with both flags false the result is "".
func (r *PathResolver) Directory(t document.Type, code string, groupByType, groupByCode bool) string {
	var segments []string
	if groupByType {
		dir := t.Directory()
		if parent, ok := dir.Parent(); ok {
			segments = r.appendLabel(segments, parent)
		}
		segments = r.appendLabel(segments, dir)
	}
	if groupByCode {
		if segment := textutil.SanitizeSegment(code); segment != "" {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, "/")
}

func (r *PathResolver) appendLabel(segments []string, dir document.TargetDirectory) []string {
	label, ok := r.dict.DirectoryLabel(dir)
	if ok {
		label = textutil.SanitizeSegment(label)
	}
	if !ok || label == "" {
		logging.WarnWithContext(r.logger, "directory label missing; segment omitted", "label_missing",
			logging.String("key", "target_directories."+string(dir)),
			logging.String("language", r.lang.Code),
			logging.String(logging.FieldImpact, "files land one level higher than configured"),
		)
		return segments
	}
	return append(segments, label)
}

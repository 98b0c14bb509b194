package preflight

import (
	"fmt"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Err carries the underlying error for failed checks that have one.
	Err error
}

// Inputs are the resolved settings of a run.
type Inputs struct {
	SourceDir       string
	TargetDir       string
	TranslationsDir string
	Broker          broker.Broker
	Language        string
}

// RunAll executes every check a run depends on, in order.
func RunAll(in Inputs) []Result {
	return []Result{
		CheckSourceDirectory("Source directory", in.SourceDir),
		CheckTargetDirectory("Target directory", in.TargetDir),
		CheckTranslation(in.Broker, in.Language, in.TranslationsDir),
	}
}

// FirstFailure converts the first failed result into an error tagged for the
// CLI: translation problems are configuration errors, everything else is a
// filesystem error.
func FirstFailure(results []Result) error {
	for _, r := range results {
		if r.Passed {
			continue
		}
		if r.Err != nil {
			return r.Err
		}
		return services.Wrap(services.ErrFilesystem, "preflight", r.Name, r.Detail, nil)
	}
	return nil
}

// Summary returns "passed/total" for display.
func Summary(results []Result) string {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d", passed, len(results))
}

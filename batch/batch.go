// Package batch runs the translation pipeline over a directory of dataset
// files: one run identity per invocation, per-file output naming, and a
// success/failure tally that survives individual file failures.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/locflow/locflow/translate"
)

// ErrNoInputFiles is returned by Run when the source directory holds no
// eligible dataset files.
var ErrNoInputFiles = errors.New("no JSON files found in input folder")

// numberedName matches dataset files carrying a numeric suffix, e.g.
// "terms_001.json". The suffix survives into the output name.
var numberedName = regexp.MustCompile(`^(.+?)_(\d+)\.json$`)

// RunID derives the run identity token from a timestamp: two-digit year,
// ISO week, ISO weekday, hour, minute. Computed once per invocation so all
// output files of one run share it.
func RunID(t time.Time) string {
	_, week := t.ISOWeek()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return fmt.Sprintf("%02d%02d%d%02d%02d", t.Year()%100, week, weekday, t.Hour(), t.Minute())
}

// OutputName computes the destination filename for one input file. Numbered
// inputs keep only their numeric suffix ("terms_001.json" becomes
// "p<runID>_001.json"); everything else keeps its full name behind a "t"
// prefix.
func OutputName(name, runID string) string {
	if m := numberedName.FindStringSubmatch(name); m != nil {
		return "p" + runID + "_" + m[2] + ".json"
	}
	return "t" + runID + "_" + name
}

// Summary tallies one batch run.
type Summary struct {
	Succeeded int
	Failed    int
	Total     int
}

// Options controls a batch run.
type Options struct {
	// Translate configures the per-file pipeline.
	Translate translate.Options
	// RunID overrides the run identity (empty = derived from the current
	// time).
	RunID string
	// OnFileStart is called before each file's translation begins.
	OnFileStart func(index, total int, name string)
	// OnFileDone is called after a file succeeds and its output is
	// persisted.
	OnFileDone func(index, total int, name string, elapsed time.Duration)
	// OnFileFail is called when a file's translation or persistence
	// fails. The run continues with the next file.
	OnFileFail func(index, total int, name string, err error)
}

// Run translates every *.json file in srcDir into dstDir. A failing file
// never aborts the run; it is tallied and the run moves on. Run returns
// ErrNoInputFiles when srcDir holds no eligible files and the final tally
// otherwise.
func Run(ctx context.Context, srcDir, dstDir string, opts Options) (Summary, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return Summary{}, fmt.Errorf("reading input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return Summary{}, ErrNoInputFiles
	}

	runID := opts.RunID
	if runID == "" {
		runID = RunID(time.Now())
	}

	sum := Summary{Total: len(files)}
	for i, name := range files {
		if opts.OnFileStart != nil {
			opts.OnFileStart(i+1, len(files), name)
		}

		outPath := filepath.Join(dstDir, OutputName(name, runID))
		result, elapsed, err := translate.TranslateFile(ctx, filepath.Join(srcDir, name), opts.Translate)
		if err == nil {
			err = result.WriteFile(outPath)
		}
		if err != nil {
			sum.Failed++
			if opts.OnFileFail != nil {
				opts.OnFileFail(i+1, len(files), name, err)
			}
			continue
		}

		sum.Succeeded++
		if opts.OnFileDone != nil {
			opts.OnFileDone(i+1, len(files), name, elapsed)
		}
	}
	return sum, nil
}

// TranslateSingle runs the pipeline for one explicit file path and writes
// the result to outPath. Used by the single-file invocation mode.
func TranslateSingle(ctx context.Context, path, outPath string, opts translate.Options) (time.Duration, error) {
	result, elapsed, err := translate.TranslateFile(ctx, path, opts)
	if err != nil {
		return 0, err
	}
	if err := result.WriteFile(outPath); err != nil {
		return 0, err
	}
	return elapsed, nil
}

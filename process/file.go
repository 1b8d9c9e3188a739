package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"punctguess/processor"
)

var (
	ErrNotTxt           = errors.New("file must have .txt extension")
	ErrSamePath         = errors.New("input and output files cannot be the same")
	ErrMissingInput     = errors.New("input file does not exist")
	ErrMissingOutputDir = errors.New("output directory does not exist")
	ErrPathConflict     = errors.New("file is used by more than one job")
)

// Job pairs an input file with the file its guessed lines are written to.
type Job struct {
	In  string
	Out string
}

// Summary reports what File did to one input.
type Summary struct {
	Path    string
	Lines   int
	Changed int
}

// isValidTxtFile checks for a .txt extension with a name before it.
func isValidTxtFile(filename string) bool {
	if !strings.HasSuffix(strings.ToLower(filename), ".txt") {
		return false
	}

	base := filepath.Base(filename)
	if base == ".txt" || strings.HasPrefix(base, ".") {
		return false
	}

	return true
}

// Validate checks that in and out are usable before anything is read.
func Validate(fsys afero.Fs, in, out string) error {
	if !isValidTxtFile(in) {
		return fmt.Errorf("input %q: %w", in, ErrNotTxt)
	}
	if !isValidTxtFile(out) {
		return fmt.Errorf("output %q: %w", out, ErrNotTxt)
	}

	absIn, err := filepath.Abs(in)
	if err == nil {
		absOut, err := filepath.Abs(out)
		if err == nil && absIn == absOut {
			return ErrSamePath
		}
	}

	if _, err := fsys.Stat(in); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%q: %w", in, ErrMissingInput)
	}

	outDir := filepath.Dir(out)
	info, err := fsys.Stat(outDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", outDir, ErrMissingOutputDir)
	}

	return nil
}

// File guesses punctuation line by line, each line being one title, and
// writes the result to out. Line breaks are kept as they are.
func File(
	ctx context.Context,
	fsys afero.Fs,
	p *processor.Processor,
	job Job,
	markup bool,
) (Summary, error) {
	sum := Summary{Path: job.In}

	if err := Validate(fsys, job.In, job.Out); err != nil {
		return sum, err
	}

	content, err := afero.ReadFile(fsys, job.In)
	if err != nil {
		return sum, fmt.Errorf("error reading input file: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	fields := make([]Field, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("processing %s: %w", job.In, err)
		}
		fields[i] = Field{
			Name:   job.In + ":" + strconv.Itoa(i+1),
			Value:  line,
			Markup: markup,
		}
	}

	results := Fields(p, fields)
	for i, r := range results {
		if r.Field.Value == "" {
			continue
		}
		sum.Lines++
		if r.Changed {
			sum.Changed++
			lines[i] = r.Guessed
		}
	}

	err = afero.WriteFile(fsys, job.Out, []byte(strings.Join(lines, "\n")), 0o644)
	if err != nil {
		return sum, fmt.Errorf("error writing output file: %w", err)
	}

	log.Info().
		Str("file", job.In).
		Int("lines", sum.Lines).
		Int("changed", sum.Changed).
		Msg("processed file")

	return sum, nil
}

// checkConflicts rejects jobs writing a file another job reads or writes.
// Two jobs reading the same input is fine.
func checkConflicts(jobs []Job) error {
	abs := func(path string) string {
		if a, err := filepath.Abs(path); err == nil {
			return a
		}
		return filepath.Clean(path)
	}

	readers := make(map[string][]int, len(jobs))
	for i, job := range jobs {
		in := abs(job.In)
		readers[in] = append(readers[in], i)
	}

	outputs := make(map[string]int, len(jobs))
	for i, job := range jobs {
		out := abs(job.Out)
		if j, ok := outputs[out]; ok {
			return fmt.Errorf("%q written by jobs %d and %d: %w", job.Out, j+1, i+1, ErrPathConflict)
		}
		outputs[out] = i
		for _, j := range readers[out] {
			if j != i {
				return fmt.Errorf("%q read by job %d and written by job %d: %w", job.Out, j+1, i+1, ErrPathConflict)
			}
		}
	}
	return nil
}

// Files runs File for every job concurrently. Summaries are returned in job
// order; the first error cancels the jobs still running.
func Files(
	ctx context.Context,
	fsys afero.Fs,
	p *processor.Processor,
	jobs []Job,
	markup bool,
) ([]Summary, error) {
	if err := checkConflicts(jobs); err != nil {
		return nil, err
	}

	sums := make([]Summary, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			sum, err := File(ctx, fsys, p, job, markup)
			sums[i] = sum
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return sums, err
	}
	return sums, nil
}

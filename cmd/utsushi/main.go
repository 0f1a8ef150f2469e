package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/compare"
	"github.com/fwojciec/utsushi/config"
	"github.com/fwojciec/utsushi/jsonl"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrTooFewTexts is returned when fewer than two non-blank texts remain to compare.
var ErrTooFewTexts = errors.New("need at least two non-blank texts to compare")

// ErrNoCases is returned when the batch input contains no cases.
var ErrNoCases = errors.New("no cases to compare")

// ErrNoChanges is returned when a patch has no text hunks to compare.
var ErrNoChanges = errors.New("no changes to compare")

// App encapsulates the application logic for testing.
type App struct {
	Source    utsushi.TextSource
	Clipboard utsushi.Clipboard
	Loader    utsushi.CaseLoader
	Saver     utsushi.ReportSaver
	Patches   utsushi.PatchParser
	Comparer  *compare.Comparer
	Logger    *zap.Logger
	Stdout    io.Writer

	Format  string // config.FormatJSON or config.FormatStat
	Copy    bool   // also copy output to Clipboard
	Workers int    // batch cases or patch hunks compared at once
}

// source is a text read from a reference.
type source struct {
	ref  string
	text string
}

// Diff compares every pair of the referenced texts.
func (a *App) Diff(ctx context.Context, refs []string) error {
	start := time.Now()
	sources, err := a.readAll(ctx, refs)
	if err != nil {
		return err
	}
	sources = a.skipBlank(sources)
	if len(sources) < 2 {
		return ErrTooFewTexts
	}

	pairs := a.Comparer.CompareAll(texts(sources))
	a.logger().Debug("compared texts",
		zap.Int("texts", len(sources)),
		zap.Int("pairs", len(pairs)),
		zap.Duration("elapsed", time.Since(start)))

	out := diffOutput{Sources: refsOf(sources), Pairs: pairs}
	return a.emit(func(w io.Writer) error {
		if a.Format == config.FormatStat {
			return writeStats(w, pairRows("", out.Sources, pairs))
		}
		return writeJSON(w, out)
	})
}

// DiffBase compares the base text against each of the other referenced texts.
func (a *App) DiffBase(ctx context.Context, baseRef string, refs []string) error {
	start := time.Now()
	all, err := a.readAll(ctx, append([]string{baseRef}, refs...))
	if err != nil {
		return err
	}
	base := all[0]
	if utsushi.IsBlank(base.text) {
		return fmt.Errorf("base %s: %w", base.ref, ErrTooFewTexts)
	}
	others := a.skipBlank(all[1:])
	if len(others) == 0 {
		return ErrTooFewTexts
	}

	labeled := a.Comparer.CompareMultiple(base.text, texts(others))
	a.logger().Debug("compared against base",
		zap.String("base", base.ref),
		zap.Int("texts", len(others)),
		zap.Duration("elapsed", time.Since(start)))

	out := diffOutput{Sources: append([]string{base.ref}, refsOf(others)...), Labeled: labeled}
	return a.emit(func(w io.Writer) error {
		if a.Format == config.FormatStat {
			return writeStats(w, labeledRows("", base.ref, refsOf(others), labeled))
		}
		return writeJSON(w, out)
	})
}

// Words compares two lines word by word.
func (a *App) Words(lineA, lineB string) error {
	left, right := a.Comparer.CompareWords(lineA, lineB)
	return a.emit(func(w io.Writer) error {
		if a.Format == config.FormatStat {
			return writeSpans(w, left, right)
		}
		return writeJSON(w, wordsOutput{Left: left, Right: right})
	})
}

// Similarity scores and classifies two strings.
func (a *App) Similarity(s1, s2 string) error {
	out := similarityOutput{
		Similarity: a.Comparer.CalculateSimilarity(s1, s2),
		ChangeType: a.Comparer.ChangeType(s1, s2).String(),
	}
	return a.emit(func(w io.Writer) error {
		if a.Format == config.FormatStat {
			return writeSimilarity(w, out)
		}
		return writeJSON(w, out)
	})
}

// Batch compares every case in the JSONL file at inputPath. Reports keep the
// input order. They are saved to outputPath when set and printed otherwise.
func (a *App) Batch(ctx context.Context, inputPath, outputPath string) error {
	cases, err := a.Loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}
	if len(cases) == 0 {
		return ErrNoCases
	}

	start := time.Now()
	reports := make([]utsushi.ComparisonReport, len(cases))
	err = a.forEach(ctx, len(cases), func(i int) {
		reports[i] = a.compareCase(cases[i])
	})
	if err != nil {
		return err
	}
	a.logger().Debug("compared cases",
		zap.Int("cases", len(cases)),
		zap.Duration("elapsed", time.Since(start)))

	return a.writeReports(outputPath, reports)
}

// Patch compares the two sides of every hunk in the unified diff at ref.
// Line numbers in the reports are file line numbers.
func (a *App) Patch(ctx context.Context, ref, outputPath string) error {
	text, err := a.Source.Read(ctx, ref)
	if err != nil {
		return fmt.Errorf("read %s: %w", ref, err)
	}
	hunks, err := a.Patches.Parse(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("parse patch: %w", err)
	}
	if len(hunks) == 0 {
		return ErrNoChanges
	}

	start := time.Now()
	reports := make([]utsushi.ComparisonReport, len(hunks))
	err = a.forEach(ctx, len(hunks), func(i int) {
		h := hunks[i]
		diff := a.Comparer.CompareLines(h.Old, h.New)
		reports[i] = utsushi.ComparisonReport{
			ID:    h.ID(),
			Pairs: []utsushi.PairDiff{{Left: 0, Right: 1, Diff: diff.Offset(h.OldStart-1, h.NewStart-1)}},
		}
	})
	if err != nil {
		return err
	}
	a.logger().Debug("compared hunks",
		zap.Int("hunks", len(hunks)),
		zap.Duration("elapsed", time.Since(start)))

	return a.writeReports(outputPath, reports)
}

// forEach calls fn for every index in [0, n) on up to Workers goroutines.
// Each call writes only its own slot, so results keep the input order.
func (a *App) forEach(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Workers, 1))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}

func (a *App) writeReports(outputPath string, reports []utsushi.ComparisonReport) error {
	if outputPath != "" {
		if err := a.Saver.Save(outputPath, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
		a.logger().Info("saved reports", zap.String("path", outputPath), zap.Int("reports", len(reports)))
		return nil
	}
	return a.emit(func(w io.Writer) error {
		if a.Format == config.FormatStat {
			return writeStats(w, reportRows(reports))
		}
		return jsonl.Write(w, reports)
	})
}

func (a *App) compareCase(c utsushi.ComparisonCase) utsushi.ComparisonReport {
	report := utsushi.ComparisonReport{ID: c.ID}
	nonBlank := 0
	for _, t := range c.Texts {
		if !utsushi.IsBlank(t) {
			nonBlank++
		}
	}

	if !utsushi.IsBlank(c.Base) {
		if nonBlank == 0 {
			report.Error = ErrTooFewTexts.Error()
			return report
		}
		report.Labeled = a.Comparer.CompareMultiple(c.Base, c.Texts)
		return report
	}

	if nonBlank < 2 {
		report.Error = ErrTooFewTexts.Error()
		return report
	}
	report.Pairs = a.Comparer.CompareAll(c.Texts)
	return report
}

func (a *App) readAll(ctx context.Context, refs []string) ([]source, error) {
	sources := make([]source, len(refs))
	for i, ref := range refs {
		text, err := a.Source.Read(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ref, err)
		}
		sources[i] = source{ref: ref, text: text}
	}
	a.logger().Debug("read sources", zap.Strings("refs", refs))
	return sources, nil
}

func (a *App) skipBlank(sources []source) []source {
	kept := make([]source, 0, len(sources))
	for _, s := range sources {
		if utsushi.IsBlank(s.text) {
			a.logger().Warn("skipping blank text", zap.String("ref", s.ref))
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// emit writes output to Stdout and, when Copy is set, to the clipboard.
func (a *App) emit(write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if _, err := a.Stdout.Write(buf.Bytes()); err != nil {
		return err
	}
	if a.Copy {
		if err := a.Clipboard.Copy(buf.String()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func texts(sources []source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.text
	}
	return out
}

func refsOf(sources []source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.ref
	}
	return out
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

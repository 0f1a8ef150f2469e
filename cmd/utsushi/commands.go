package main

import (
	"io"

	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/chroma"
	"github.com/fwojciec/utsushi/clipboard"
	"github.com/fwojciec/utsushi/compare"
	"github.com/fwojciec/utsushi/config"
	"github.com/fwojciec/utsushi/diffmatchpatch"
	"github.com/fwojciec/utsushi/git"
	"github.com/fwojciec/utsushi/gitdiff"
	"github.com/fwojciec/utsushi/jsonl"
	"github.com/fwojciec/utsushi/lcs"
	"github.com/fwojciec/utsushi/source"
	"github.com/fwojciec/utsushi/worddiff"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootFlags holds flags shared by every command.
type rootFlags struct {
	configPath string
	copy       bool
	repo       string
}

// NewRootCommand builds the utsushi command tree reading stdin and writing
// command output to stdout. Logs go to stderr unless a log file is configured.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "utsushi",
		Short: "Compare texts line by line and word by word",
		Long: `utsushi compares two or more texts and reports added, removed, changed and
unchanged lines, with word-level spans for changed lines.

Sources:
  path/to/file       file content
  -                  standard input
  git:<rev>:<path>   file content at a git revision (see --repo)
  clipboard:         clipboard content`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default .utsushi.yaml in . or the user config dir)")
	pf.String("format", config.DefaultFormat, "output format: json or stat")
	pf.String("algorithm", config.DefaultAlgorithm, "line alignment: lcs or myers")
	pf.String("tokenizer", config.DefaultTokenizer, "word tokens for changed lines: words, code or syntax")
	pf.String("language", "", "lexer for the syntax tokenizer, e.g. go or python")
	pf.Int("workers", config.DefaultWorkers, "comparisons run at once")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.String("log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&flags.copy, "copy", false, "also copy the output to the clipboard")
	pf.StringVar(&flags.repo, "repo", "", "repository for git: sources (default current directory)")

	rootCmd.AddCommand(
		newDiffCommand(&flags),
		newWordsCommand(&flags),
		newSimilarityCommand(&flags),
		newBatchCommand(&flags),
		newPatchCommand(&flags),
	)
	return rootCmd
}

func newDiffCommand(flags *rootFlags) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "diff <src> <src> [src...]",
		Short: "Compare every pair of sources, or each source against --base",
		Args: func(cmd *cobra.Command, args []string) error {
			if base != "" {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *App) error {
				if base != "" {
					return app.DiffBase(cmd.Context(), base, args)
				}
				return app.Diff(cmd.Context(), args)
			})
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "compare each source against this one")
	return cmd
}

func newWordsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "words <lineA> <lineB>",
		Short: "Compare two lines word by word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *App) error {
				return app.Words(args[0], args[1])
			})
		},
	}
}

func newSimilarityCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <s1> <s2>",
		Short: "Print the similarity score and change type of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *App) error {
				return app.Similarity(args[0], args[1])
			})
		},
	}
}

func newBatchCommand(flags *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "batch <cases.jsonl>",
		Short: "Compare every case in a JSONL file",
		Long: `Each input line is a JSON object {"id": "...", "base": "...", "texts": [...]}.
With a non-blank base every text is compared against it; otherwise every pair
of texts is compared. One report per case is written in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *App) error {
				return app.Batch(cmd.Context(), args[0], output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write reports to this JSONL file instead of stdout")
	return cmd
}

func newPatchCommand(flags *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "patch <src>",
		Short: "Compare the old and new side of every hunk in a unified diff",
		Long: `Reads a unified diff (for example "git diff | utsushi patch -") and compares
the old and new text of each hunk, so changed lines get word-level spans.
One report per hunk is written in patch order, with file line numbers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *App) error {
				return app.Patch(cmd.Context(), args[0], output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write reports to this JSONL file instead of stdout")
	return cmd
}

// withApp loads configuration, wires an App for cmd and runs fn with it.
func withApp(cmd *cobra.Command, flags *rootFlags, fn func(app *App) error) error {
	cfg, err := config.Load(flags.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := buildLogger(cfg.Log.File, cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
		_ = closeLog()
	}()
	logger.Debug("loaded config",
		zap.String("format", cfg.Format),
		zap.String("algorithm", cfg.Algorithm),
		zap.String("tokenizer", cfg.Tokenizer),
		zap.String("language", cfg.Language),
		zap.Int("workers", cfg.Workers))

	comparer, err := newComparer(cfg)
	if err != nil {
		return err
	}

	clip := clipboard.NewSystem()
	app := &App{
		Source: &source.Resolver{
			Stdin:     cmd.InOrStdin(),
			Git:       git.NewRunner(),
			Clipboard: clip,
			RepoPath:  flags.repo,
		},
		Clipboard: clip,
		Loader:    jsonl.NewLoader(),
		Saver:     jsonl.NewSaver(),
		Patches:   gitdiff.NewParser(),
		Comparer:  comparer,
		Logger:    logger,
		Stdout:    cmd.OutOrStdout(),
		Format:    cfg.Format,
		Copy:      flags.copy,
		Workers:   cfg.Workers,
	}
	return fn(app)
}

func newComparer(cfg *config.Config) (*compare.Comparer, error) {
	tokenizer, err := tokenizerFor(cfg)
	if err != nil {
		return nil, err
	}
	aligner := alignerFor(cfg.Algorithm)
	words := worddiff.NewDiffer(
		worddiff.WithTokenizer(tokenizer),
		worddiff.WithAligner(aligner),
	)
	return compare.New(
		compare.WithAligner(aligner),
		compare.WithWordComparer(words),
		compare.WithWorkers(cfg.Workers),
	), nil
}

func alignerFor(algorithm string) utsushi.Aligner {
	if algorithm == config.AlgorithmMyers {
		return diffmatchpatch.NewAligner()
	}
	return lcs.NewAligner()
}

func tokenizerFor(cfg *config.Config) (utsushi.Tokenizer, error) {
	switch cfg.Tokenizer {
	case config.TokenizerCode:
		return worddiff.NewCodeTokenizer(), nil
	case config.TokenizerSyntax:
		tok, err := chroma.NewTokenizer(cfg.Language)
		if err != nil {
			return nil, err
		}
		return tok, nil
	default:
		return worddiff.NewSegmenter(), nil
	}
}

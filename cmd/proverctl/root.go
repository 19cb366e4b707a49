package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"foplprover/internal/ioformat"
	"foplprover/internal/proverconfig"
	"foplprover/internal/prover/search"
	"foplprover/internal/prover/session"
)

var (
	verbose       bool
	problemFile   string
	configFile    string
	maxClausesArg int
	maxLevelsArg  int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "proverctl",
	Short: "First-order resolution-refutation theorem prover",
	Long: `proverctl reads a knowledge base and a negated goal from a JSON
file, saturates the clause set by binary resolution under breadth-first
level order with tautology deletion and subsumption pruning, and reports
whether the empty clause was derived.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runProve,
}

func init() {
	rootCmd.Flags().StringVarP(&problemFile, "file", "f", "", "path to the JSON problem file (required)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to an optional YAML config file with search limits")
	rootCmd.Flags().IntVar(&maxClausesArg, "max-clauses", 0, "abort once the clause store reaches this size (0 = unbounded)")
	rootCmd.Flags().IntVar(&maxLevelsArg, "max-levels", 0, "abort after this many saturation levels (0 = unbounded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagRequired("file")
}

// zapLogger adapts *zap.Logger to search.Logger so the core package
// never has to import zap.
type zapLogger struct{ l *zap.Logger }

func (z zapLogger) Debugf(format string, args ...interface{}) {
	z.l.Sugar().Debugf(format, args...)
}

func runProve(cmd *cobra.Command, args []string) error {
	limits := search.Limits{MaxClauses: maxClausesArg, MaxLevels: maxLevelsArg}

	if configFile != "" {
		cfg, err := proverconfig.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", configFile, err)
		}
		logger.Debug("loaded config", zap.String("path", configFile))
		fileLimits := cfg.Limits()
		if limits.MaxClauses == 0 {
			limits.MaxClauses = fileLimits.MaxClauses
		}
		if limits.MaxLevels == 0 {
			limits.MaxLevels = fileLimits.MaxLevels
		}
	}

	data, err := os.ReadFile(problemFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", problemFile, err)
	}

	problem, err := ioformat.Decode(data)
	if err != nil {
		return err
	}

	logger.Info("problem loaded",
		zap.Int("knowledge_base_size", len(problem.KnowledgeBase)),
		zap.Int("negated_goal_size", len(problem.NegatedTheoremPredicates)))

	result, err := session.Run(problem.KnowledgeBase, problem.NegatedTheoremPredicates, limits, zapLogger{logger})
	if err != nil {
		return err
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result session.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Initial knowledge base clauses are:")
	for _, c := range result.Initial {
		fmt.Fprintf(out, "Clause %d\t| %s\n", c.ID, c.String())
	}

	if result.Found {
		fmt.Fprintln(out, "Knowledge base contradicts, so inverse of the negated target clause is provable.")
		fmt.Fprintln(out, "Prove by refutation resolution order will be shown.")
		for _, line := range result.Trace {
			fmt.Fprintln(out, line)
		}
		return
	}

	fmt.Fprintln(out, "Knowledge base does not contradict.")
}

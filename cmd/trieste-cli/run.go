package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdutor/trieste/pkg/config"
	"github.com/vdutor/trieste/pkg/core"
	"github.com/vdutor/trieste/pkg/datasets"
	"github.com/vdutor/trieste/pkg/logging"
	"github.com/vdutor/trieste/pkg/metrics"
	_ "github.com/vdutor/trieste/pkg/models"
	"github.com/vdutor/trieste/pkg/objectives"
	"github.com/vdutor/trieste/pkg/optimizers"
)

var (
	configPath    string
	objectiveName string
	initialPoints int
)

// benchmark ties a named objective to its search space and known minimum.
type benchmark struct {
	observer core.SingleObserver
	space    func(opts ...core.SpaceOption) (*core.Box, error)
	minimum  float64
}

var benchmarks = map[string]benchmark{
	"branin": {
		observer: objectives.Observer(objectives.Branin),
		space:    objectives.BraninSearchSpace,
		minimum:  objectives.BraninMinimum,
	},
	"quadratic": {
		observer: objectives.Observer(objectives.SumOfSquares),
		space: func(opts ...core.SpaceOption) (*core.Box, error) {
			return core.NewBox([]float64{-1, -1}, []float64{1, 1}, opts...)
		},
		minimum: 0,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an optimization loop over a benchmark objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		bench, ok := benchmarks[objectiveName]
		if !ok {
			names := make([]string, 0, len(benchmarks))
			for name := range benchmarks {
				names = append(names, name)
			}
			return fmt.Errorf("unknown objective %q, choose one of: %s",
				objectiveName, strings.Join(names, ", "))
		}

		logger, err := cfg.BuildLogger()
		if err != nil {
			return err
		}
		logging.SetLogger(logger)

		var spaceOpts []core.SpaceOption
		if cfg.Run.Seed != 0 {
			spaceOpts = append(spaceOpts, core.WithSeed(cfg.Run.Seed))
		}
		space, err := bench.space(spaceOpts...)
		if err != nil {
			return err
		}

		rule, err := cfg.BuildRule()
		if err != nil {
			return err
		}

		ctx := context.Background()
		seed, err := datasets.SingleInitialDesign(ctx, bench.observer, space, initialPoints)
		if err != nil {
			return err
		}

		optimizer, err := optimizers.NewSingleObjectiveOptimizer(bench.observer, space)
		if err != nil {
			return err
		}

		result, _, err := optimizer.Optimize(
			ctx, cfg.Run.Steps, seed, cfg.ModelSpec(), rule,
			optimizers.WithTrackState(cfg.Run.TrackState),
		)
		if err != nil {
			return err
		}

		dataset, _, err := result.TryGet()
		if err != nil {
			return err
		}

		point, value, err := metrics.BestPoint(dataset)
		if err != nil {
			return err
		}
		regret, err := metrics.SimpleRegret(dataset, bench.minimum)
		if err != nil {
			return err
		}

		fmt.Printf("observations: %d\n", dataset.Len())
		fmt.Printf("best point:   %v\n", point)
		fmt.Printf("best value:   %g\n", value)
		fmt.Printf("regret:       %g\n", regret)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML run configuration")
	runCmd.Flags().StringVarP(&objectiveName, "objective", "o", "branin", "benchmark objective to optimize")
	runCmd.Flags().IntVarP(&initialPoints, "initial-points", "n", 5, "size of the initial design")
	rootCmd.AddCommand(runCmd)
}

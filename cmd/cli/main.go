package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"golca/adapters/artifacts"
	"golca/api"
	"golca/domain/lca"
	"golca/internal"
	"golca/internal/config"
	"golca/internal/engine"
	"golca/internal/trainer"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "golca-cli",
		Short: "LCA sustainability scoring for metal-production scenarios",
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newTrainCmd(),
		newServeCmd(),
		newBenchmarksCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPredictCmd() *cobra.Command {
	var modelDir string

	cmd := &cobra.Command{
		Use:   "predict [request-json]",
		Short: "Score one scenario and print the prediction as JSON",
		Long: `Score a metal-production scenario given as one JSON object.

Example: golca-cli predict '{"metal_type":"Aluminum","production_route":"Secondary","region":"Europe","recycling_rate":50}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()

			var req lca.Request
			if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
				return fmt.Errorf("invalid JSON input: %w", err)
			}

			store := artifacts.NewStore(modelDir, logger)
			bundle, err := store.Load()
			if err != nil {
				logger.Warn("artifact bundle incomplete: %v", err)
			}

			result, err := engine.New(bundle, logger).Predict(req)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelDir, "model-dir", "ml_models/trained", "Directory holding trained artifacts")
	return cmd
}

func newTrainCmd() *cobra.Command {
	var datasetDir string
	var modelDir string
	var seed int64

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train regressors from the dataset folder and write artifacts",
		Long: `Train one linear regressor per target from every CSV/XLSX file in the
dataset folder. When the folder is empty a seeded sample dataset is
synthesized first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			store := artifacts.NewStore(modelDir, logger)

			metadata, err := trainer.New(datasetDir, store, seed, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Training completed: version=%s run=%s\n", metadata.Version, metadata.TrainingRunID)
			for target, m := range metadata.Models {
				fmt.Printf("%s: %s (R2 = %.4f, MAE = %.2f)\n", target, m.ModelType, m.R2Score, m.MAE)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetDir, "datasets", "datasets", "Dataset directory")
	cmd.Flags().StringVar(&modelDir, "model-dir", "ml_models/trained", "Output directory for trained artifacts")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic sampling and splits")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the prediction API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store := artifacts.NewStore(cfg.Paths.ModelDir, logger)
			bundle, err := store.Load()
			if err != nil {
				logger.Warn("artifact bundle incomplete: %v", err)
			}

			server := api.NewServer(engine.New(bundle, logger), nil, logger)
			return server.Run(cfg.Server.Port)
		},
	}
	return cmd
}

func newBenchmarksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchmarks [metal]",
		Short: "Print industry benchmark bands for a metal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchmark, ok := lca.BenchmarkFor(args[0])
			if !ok {
				return fmt.Errorf("no benchmark bands published for %s (available: %v)",
					args[0], lca.BenchmarkMetals())
			}
			out, err := json.MarshalIndent(benchmark, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}

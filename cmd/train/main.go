// Command train runs the offline training pipeline with the configured
// dataset and model directories.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"golca/adapters/artifacts"
	"golca/internal"
	"golca/internal/config"
	"golca/internal/trainer"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store := artifacts.NewStore(cfg.Paths.ModelDir, logger)
	metadata, err := trainer.New(cfg.Paths.DatasetDir, store, 42, logger).Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Training completed successfully!")
	for target, m := range metadata.Models {
		fmt.Printf("%s: %s (R2 = %.4f)\n", target, m.ModelType, m.R2Score)
	}
}

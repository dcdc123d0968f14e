// Command predict is the script-facing prediction entry point: it takes one
// JSON object as a shell argument and prints one JSON object to stdout. The
// exit status is non-zero only when no input was provided; every other
// failure is reported inside the JSON payload so callers always get a parse-
// able response.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"golca/adapters/artifacts"
	"golca/domain/lca"
	"golca/internal"
	"golca/internal/config"
	"golca/internal/engine"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(`{"error": "No input data provided"}`)
		os.Exit(1)
	}

	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	var req lca.Request
	if err := json.Unmarshal([]byte(os.Args[1]), &req); err != nil {
		fmt.Println(`{"error": "Invalid JSON input"}`)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid, using defaults: %v", err)
		cfg = &config.Config{}
		cfg.Paths.ModelDir = "ml_models/trained"
	}

	store := artifacts.NewStore(cfg.Paths.ModelDir, logger)
	bundle, err := store.Load()
	if err != nil {
		// degraded bundle, engine falls back as needed
		logger.Warn("artifact bundle incomplete: %v", err)
	}

	result, err := engine.New(bundle, logger).Predict(req)
	if err != nil {
		printError(err)
		return
	}

	out, err := json.Marshal(result)
	if err != nil {
		printError(err)
		return
	}
	fmt.Println(string(out))
}

func printError(err error) {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	fmt.Println(string(payload))
}

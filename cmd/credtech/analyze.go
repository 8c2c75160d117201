package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/config"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, cleanup := buildEngine(cfg)
	defer cleanup()

	results := eng.AnalyzeBatch(context.Background(), args)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

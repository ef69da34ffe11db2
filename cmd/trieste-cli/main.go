package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trieste-cli",
	Short: "Run Bayesian optimization loops from the command line",
	Long: `A command-line interface for running Bayesian optimization without
writing boilerplate code.

The CLI provides:
- Optimization runs over built-in benchmark objectives
- YAML configuration of steps, acquisition and surrogate model
- Configuration validation
- Best-point and regret reporting`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

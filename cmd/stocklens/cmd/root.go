// Package cmd - stocklens CLI commands
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wonny/stocklens/internal/pkg/logger"
)

// rootOptions 공통 플래그
type rootOptions struct {
	tickersFile string
	verbose     bool
	jsonOutput  bool
}

// NewRootCmd builds the stocklens command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "stocklens",
		Short: "StockLens - company name resolution and moving-average trends",
		Long: `StockLens - company name resolution and moving-average trends

Usage:
    go run ./cmd/stocklens [command]

Commands:
    resolve     <name>        - Resolve a company name to a ticker
    classify    --short ...   - Classify a trend from averages
    tickers     [symbol|name] - Show the ticker table
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.tickersFile, "tickers", "", "ticker YAML file (default: built-in table)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON")

	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newTickersCmd(opts))

	return root
}

// Execute 루트 커맨드 실행
func Execute() error {
	return NewRootCmd().Execute()
}

// initConfig loads .env and sets up stderr logging
func initConfig(cmd *cobra.Command, opts *rootOptions) error {
	if err := godotenv.Load(); err != nil && opts.verbose {
		// .env 파일이 없어도 계속 진행 (환경변수로 설정 가능)
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: .env file not found, using environment variables")
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" && !opts.verbose {
		level = envLevel
	}

	return logger.InitWithOutput(logger.Config{
		Level:       level,
		Format:      "pretty",
		ServiceName: "stocklens-cli",
	}, cmd.ErrOrStderr())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

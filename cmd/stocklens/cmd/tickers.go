package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wonny/stocklens/internal/pkg/tickers"
)

func newTickersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tickers [symbol|name]...",
		Short: "티커 테이블 조회",
		Long: `티커 테이블을 출력합니다. 인자를 주면 종목 코드 또는 종목명으로 조회합니다.

Examples:
  go run ./cmd/stocklens tickers
  go run ./cmd/stocklens tickers 005930 NAVER`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tickers.Load(root.tickersFile)
			if err != nil {
				return err
			}
			return runTickers(cmd, root, table, args)
		},
	}
}

func runTickers(cmd *cobra.Command, root *rootOptions, table *tickers.Table, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if root.jsonOutput {
			return printJSON(out, table.Entries())
		}
		for _, e := range table.Entries() {
			fmt.Fprintf(out, "%s\t%s\n", e.Symbol, e.Name)
		}
		return nil
	}

	found := make([]tickers.Entry, 0, len(args))
	for _, arg := range args {
		if name, ok := table.Lookup(arg); ok {
			found = append(found, tickers.Entry{Symbol: strings.TrimSpace(arg), Name: name})
			continue
		}
		if symbol, ok := table.SymbolFor(arg); ok {
			name, _ := table.Lookup(symbol)
			found = append(found, tickers.Entry{Symbol: symbol, Name: name})
			continue
		}
		return fmt.Errorf("unknown ticker or name: %q", arg)
	}

	if root.jsonOutput {
		return printJSON(out, found)
	}
	for _, e := range found {
		fmt.Fprintf(out, "%s\t%s\n", e.Symbol, e.Name)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/wonny/stocklens/internal/domain/stock"
	"github.com/wonny/stocklens/internal/infra/database/postgres"
	"github.com/wonny/stocklens/internal/pkg/config"
	"github.com/wonny/stocklens/internal/pkg/tickers"
	"github.com/wonny/stocklens/internal/service/lookup"
	"github.com/wonny/stocklens/internal/service/resolver"
	"github.com/wonny/stocklens/internal/service/trend"
)

type resolveOptions struct {
	*rootOptions
	useDB   bool
	market  string
	all     bool
	suggest int
	timeout time.Duration
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "회사명을 종목으로 해석",
		Long: `회사명(또는 종목 코드)을 가장 가까운 종목으로 해석합니다.
기본 코퍼스는 티커 테이블이며 --db 지정 시 market.stocks를 사용합니다.

Examples:
  go run ./cmd/stocklens resolve 삼성전자
  go run ./cmd/stocklens resolve "sk 하이닉스" --suggest 5
  go run ./cmd/stocklens resolve 카카오 --db --market KOSPI`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&opts.useDB, "db", false, "resolve against market.stocks (DATABASE_URL)")
	cmd.Flags().StringVar(&opts.market, "market", "", "market filter for --db (KOSPI, KOSDAQ, KONEX, ETF)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "include non-tradable stocks with --db")
	cmd.Flags().IntVar(&opts.suggest, "suggest", 0, "print up to N ranked candidates instead of one match")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "database timeout")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, query string) error {
	if opts.useDB {
		return runResolveDB(cmd, opts, query)
	}

	table, err := tickers.Load(opts.tickersFile)
	if err != nil {
		return err
	}

	// 종목 코드가 들어오면 종목명으로 치환
	query, _ = table.Expand(query)

	r := resolver.New[tickers.Entry](log.Logger)
	corpus := lookup.TickerRecords(table)
	out := cmd.OutOrStdout()

	if opts.suggest > 0 {
		candidates, err := r.Suggest(query, corpus, opts.suggest)
		if err != nil {
			return err
		}
		if opts.jsonOutput {
			return printJSON(out, candidates)
		}
		for _, c := range candidates {
			fmt.Fprintf(out, "%s\t%s\t%.4f\n", c.Record.Payload.Symbol, c.Record.Name, c.Score)
		}
		return nil
	}

	m, err := r.Resolve(query, corpus)
	if err != nil {
		return err
	}
	if !m.Found {
		return fmt.Errorf("%w: %q (best score %.4f)", stock.ErrStockNotFound, m.Query, m.Score)
	}

	if opts.jsonOutput {
		return printJSON(out, m)
	}
	printMatch(out, m.Record.Payload.Symbol, m.Record.Name, m.Stage, m.Score)
	return nil
}

func runResolveDB(cmd *cobra.Command, opts *resolveOptions, query string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	table, err := tickers.Load(opts.tickersFile)
	if err != nil {
		return err
	}

	svc := lookup.NewService(
		postgres.NewStockRepository(pool),
		postgres.NewPriceRepository(pool),
		table,
		trend.Windows{Short: cfg.Lookup.ShortWindow, Long: cfg.Lookup.LongWindow},
	)

	filter := stock.CorpusFilter{TradableOnly: !opts.all}
	if opts.market != "" {
		filter.Market = &opts.market
	}

	out := cmd.OutOrStdout()

	if opts.suggest > 0 {
		candidates, err := svc.Suggest(ctx, query, opts.suggest, filter)
		if err != nil {
			return err
		}
		if opts.jsonOutput {
			return printJSON(out, candidates)
		}
		for _, c := range candidates {
			fmt.Fprintf(out, "%s\t%s\t%.4f\n", c.Record.Payload.Symbol, c.Record.Name, c.Score)
		}
		return nil
	}

	m, err := svc.ResolveName(ctx, query, filter)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(out, m)
	}
	printMatch(out, m.Record.Payload.Symbol, m.Record.Name, m.Stage, m.Score)
	return nil
}

func printMatch(w io.Writer, symbol, name string, stage resolver.Stage, score float64) {
	fmt.Fprintf(w, "%s\t%s\t(%s, %.4f)\n", symbol, name, stage, score)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wonny/stocklens/internal/service/trend"
)

type classifyOptions struct {
	*rootOptions
	short   float64
	long    float64
	current float64
}

func newClassifyCmd(root *rootOptions) *cobra.Command {
	opts := &classifyOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "이동평균으로 추세와 시그널 분류",
		Long: `단기/장기 이동평균과 현재가로 추세와 시그널을 분류합니다.
지정하지 않은 값은 누락으로 처리되어 insufficient_data가 됩니다.

Examples:
  go run ./cmd/stocklens classify --short 2450.5 --long 2300.25 --current 2500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.short, "short", 0, "short-window average")
	cmd.Flags().Float64Var(&opts.long, "long", 0, "long-window average")
	cmd.Flags().Float64Var(&opts.current, "current", 0, "current value")

	return cmd
}

func runClassify(cmd *cobra.Command, opts *classifyOptions) error {
	flag := func(name string, v float64) *float64 {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &v
	}

	result, err := trend.Classify(flag("short", opts.short), flag("long", opts.long), flag("current", opts.current))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return printJSON(out, result)
	}

	fmt.Fprintf(out, "trend:  %s\n", result.Trend)
	fmt.Fprintf(out, "signal: %s\n", result.Signal)
	if result.ShortVsLongPercent != nil {
		fmt.Fprintf(out, "short vs long:   %+.2f%%\n", *result.ShortVsLongPercent)
		fmt.Fprintf(out, "value vs short:  %+.2f%%\n", *result.ValueVsShortPercent)
		fmt.Fprintf(out, "value vs long:   %+.2f%%\n", *result.ValueVsLongPercent)
	}
	return nil
}

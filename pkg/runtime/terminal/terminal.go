package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
	reportsvc "github.com/NBR-24/PothuHole/pkg/services/report"
)

// CLI renders the report views in a terminal.
type CLI struct {
	reports  reportsvc.Service
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Reports reportsvc.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reports:  opts.Reports,
		reporter: NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pothuhole",
		Short: "Pothole report views",
	}

	cmd.AddCommand(cli.newLeaderboardCmd())
	cmd.AddCommand(cli.newReportsCmd())

	return cmd
}

func (cli *CLI) newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show districts ranked by report count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := cli.reports.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}
			return cli.reporter.PrintSummary(summary)
		},
	}
}

func (cli *CLI) newReportsCmd() *cobra.Command {
	var (
		search    string
		sortBy    string
		minDanger int
		maxDanger int
		page      int
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List reports with the same sorting and filtering as the web UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortOrder, err := parseSortOrder(sortBy)
			if err != nil {
				return err
			}

			criteria := domain.QueryCriteria{
				Search:   search,
				SortBy:   sortOrder,
				Page:     page,
				PageSize: pageSize,
			}
			if minDanger != domain.MinDangerLevel || maxDanger != domain.MaxDangerLevel {
				criteria.DangerRange = &domain.DangerRange{Min: minDanger, Max: maxDanger}
			}

			result, err := cli.reports.List(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			return cli.reporter.PrintPage(result)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring filter over description and location")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.SortNewest), "Sort order: newest, oldest or mostDangerous")
	cmd.Flags().IntVar(&minDanger, "min-danger", domain.MinDangerLevel, "Minimum danger level (inclusive)")
	cmd.Flags().IntVar(&maxDanger, "max-danger", domain.MaxDangerLevel, "Maximum danger level (inclusive)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Reports per page")

	return cmd
}

func parseSortOrder(value string) (domain.SortOrder, error) {
	switch value {
	case string(domain.SortNewest):
		return domain.SortNewest, nil
	case string(domain.SortOldest):
		return domain.SortOldest, nil
	case string(domain.SortMostDangerous):
		return domain.SortMostDangerous, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", value)
	}
}

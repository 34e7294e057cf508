package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/internal/highscore"
)

var (
	headingColor = color.New(color.FgBlue, color.Bold).SprintfFunc()
	bestColor    = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// ScoresOptions holds flags specific to the scores command.
type ScoresOptions struct {
	Limit int
}

// NewScoresCommand creates the scores command.
func NewScoresCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScoresOptions{}

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score and recent best games",
		Long: `Show the saved high score.

With the sqlite backend every finished game is recorded, and the best
of them are listed in a table.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScores(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "number of games to list")
	addScoresFlags(cmd)

	return cmd
}

func runScores(cmd *cobra.Command, rootOpts *RootOptions, opts *ScoresOptions) error {
	cfg := rootOpts.Config
	if opts.Limit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", opts.Limit)
	}

	store, err := highscore.Open(cfg.Scores.Backend, cfg.Scores.Path, rootOpts.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	db, ok := store.(*highscore.SQLiteStore)
	if !ok {
		fmt.Fprintf(out, "%s %s\n", headingColor("High score:"), bestColor(humanize.Comma(int64(store.LoadHighScore()))))
		return nil
	}

	ctx := cmd.Context()
	best, err := db.Best(ctx)
	if err != nil {
		return err
	}
	played, err := db.Count(ctx)
	if err != nil {
		return err
	}
	top, err := db.Top(ctx, opts.Limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s (%s played)\n", headingColor("High score:"), bestColor(humanize.Comma(int64(best))), humanize.Comma(int64(played)))
	if len(top) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	printScores(out, top, time.Now())
	return nil
}

func printScores(w io.Writer, entries []highscore.Entry, now time.Time) {
	data := make([][]string, 0, len(entries))
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			humanize.Comma(int64(e.Score)),
			strconv.Itoa(e.Level),
			strconv.Itoa(e.Lines),
			humanize.RelTime(e.PlayedAt, now, "ago", "from now"),
		})
	}
	printTable(w, []string{"#", "score", "level", "lines", "played"}, data)
}

func printTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}

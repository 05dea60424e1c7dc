package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/eatwatch/internal/cli"
	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/pipeline"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var (
	flagJSON bool
	flagLast int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print progress, trend and recent entries",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of tables")
	summaryCmd.Flags().IntVar(&flagLast, "last", 10, "Number of recent entries to list (0 for all)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeSummaryJSON(os.Stdout, snap, flagLast)
	}
	writeSummaryText(os.Stdout, snap, flagLast)
	return nil
}

type summaryEntry struct {
	Date   model.Date `json:"date"`
	Weight float64    `json:"weight"`
	Trend  float64    `json:"trend"`
}

type summaryReport struct {
	File         string               `json:"file"`
	Window       int                  `json:"window"`
	Today        model.Date           `json:"today"`
	Goal         model.DatedSample    `json:"goal"`
	Progress     *model.ProgressStats `json:"progress"`
	ProgressText string               `json:"progress_text"`
	AxisMin      int                  `json:"axis_min"`
	AxisMax      int                  `json:"axis_max"`
	Entries      []summaryEntry       `json:"entries"`
}

// buildSummary collects the report for the newest last entries, newest first.
func buildSummary(snap *pipeline.Snapshot, last int) summaryReport {
	r := summaryReport{
		File:         snap.Path,
		Window:       snap.Window,
		Today:        snap.Today,
		Goal:         snap.Goal,
		Progress:     snap.Progress,
		ProgressText: snap.ProgressText(),
		AxisMin:      snap.AxisMin,
		AxisMax:      snap.AxisMax,
		Entries:      []summaryEntry{},
	}

	n := len(snap.Log)
	count := n
	if last > 0 && last < n {
		count = last
	}
	for i := n - 1; i >= n-count; i-- {
		r.Entries = append(r.Entries, summaryEntry{
			Date:   snap.Log[i].Date,
			Weight: snap.Log[i].Weight,
			Trend:  snap.Smoothed[i].Weight,
		})
	}
	return r
}

func writeSummaryJSON(w io.Writer, snap *pipeline.Snapshot, last int) error {
	data, err := sonic.ConfigStd.MarshalIndent(buildSummary(snap, last), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

const summaryBarWidth = 30

func writeSummaryText(w io.Writer, snap *pipeline.Snapshot, last int) {
	r := buildSummary(snap, last)

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("EAT WATCH  "+r.ProgressText))
	if r.Progress != nil {
		fmt.Fprintln(w, "  "+cli.RenderProgressBar(r.Progress.PercentComplete, summaryBarWidth))
	}
	fmt.Fprintln(w)

	rows := [][]string{
		{"Goal", fmt.Sprintf("%s by %s", cli.FormatWeight(r.Goal.Weight), cli.FormatDate(r.Goal.Date))},
	}
	if s, ok := snap.Latest(); ok {
		rows = append(rows, []string{"Latest", fmt.Sprintf("%s on %s", cli.FormatWeight(s.Weight), cli.FormatDate(s.Date))})
	}
	if s, ok := snap.Trend(); ok {
		rows = append(rows, []string{"Trend", cli.FormatWeight(s.Weight)})
	}
	if d, ok := snap.ToGo(); ok {
		rows = append(rows, []string{"To go", cli.FormatDelta(d)})
	}
	if c, ok := snap.Change(); ok {
		rows = append(rows, []string{"Change", cli.FormatDelta(c) + " since start"})
	}
	rows = append(rows, []string{"---"}, []string{"Window", fmt.Sprintf("%d entries", r.Window)})

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(r.Entries) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  No measurements yet.")
		return
	}

	trendVals := make([]float64, len(snap.Smoothed))
	for i, s := range snap.Smoothed {
		trendVals[i] = s.Weight
	}

	entryRows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		entryRows = append(entryRows, []string{
			cli.FormatDate(e.Date),
			cli.FormatDayOfWeek(int(e.Date.Time().Weekday())),
			cli.FormatWeight(e.Weight),
			cli.FormatWeight(e.Trend),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Recent entries  %s", cli.RenderSparkline(trendVals)),
		Headers: []string{"Date", "Day", "Weight", "Trend"},
		Rows:    entryRows,
	}))
}

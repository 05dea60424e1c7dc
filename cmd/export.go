package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/eatwatch/internal/export"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagWidth  int
	flagHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the weight chart to a PNG file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "chart.png", "Output PNG path")
	exportCmd.Flags().IntVar(&flagWidth, "width", export.DefaultWidth, "Image width in pixels")
	exportCmd.Flags().IntVar(&flagHeight, "height", export.DefaultHeight, "Image height in pixels")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOutput, err)
	}

	if err := export.RenderPNG(f, snap, flagWidth, flagHeight); err != nil {
		_ = f.Close()
		_ = os.Remove(flagOutput)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}

	logrus.WithField("path", flagOutput).Info("chart exported")
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagOutput)
	}
	return nil
}

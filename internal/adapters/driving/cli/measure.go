package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

var (
	measureFrom  string
	measureTo    string
	measureScale float64
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure a distance on the drawing",
	Long: `Measure the real distance between two document points.

Uses the stored scale unless --scale is given. Run 'tiler scale --save'
first to store one.`,
	RunE: runMeasure,
}

func init() {
	measureCmd.Flags().StringVar(&measureFrom, "from", "", "first point as x,y")
	measureCmd.Flags().StringVar(&measureTo, "to", "", "second point as x,y")
	measureCmd.Flags().Float64VarP(&measureScale, "scale", "s", 0, "scale in mm per pixel (default: stored scale)")
	_ = measureCmd.MarkFlagRequired("from")
	_ = measureCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(measureCmd)
}

func runMeasure(cmd *cobra.Command, _ []string) error {
	if newMeasureSession == nil {
		return errors.New("measure service not configured")
	}

	scale, units, err := measureContext(domain.ScaleFactor(measureScale))
	if err != nil {
		return err
	}

	session, err := selectPair(measureFrom, measureTo)
	if err != nil {
		return err
	}

	m, err := session.Measure(scale)
	if err != nil {
		if errors.Is(err, domain.ErrScaleNotSet) {
			return fmt.Errorf("%w: run 'tiler scale --save' or pass --scale", err)
		}
		return fmt.Errorf("measurement failed: %w", err)
	}

	cmd.Printf("Distance: %.2f %s\n", m.In(units), units)
	cmd.Printf("  %.2f px\n", m.Pixels)
	cmd.Printf("  %.2f mm\n", m.Millimetres)
	cmd.Printf("  %.3f in\n", m.Inches)
	cmd.Printf("Scale: %s\n", scale)
	return nil
}

// measureContext resolves the scale and display unit, preferring the
// explicit scale over the stored one.
func measureContext(explicit domain.ScaleFactor) (domain.ScaleFactor, domain.Unit, error) {
	units := domain.UnitMillimetres
	if settingsService == nil {
		return explicit, units, nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return 0, units, fmt.Errorf("failed to get settings: %w", err)
	}
	units = settings.Display.Units
	if explicit != 0 {
		return explicit, units, nil
	}
	return settings.Scale, units, nil
}

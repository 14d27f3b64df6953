package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

var (
	scaleFrom     string
	scaleTo       string
	scaleDistance float64
	scaleUnit     string
	scaleSave     bool
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Calibrate the drawing scale",
	Long: `Derive the drawing scale from two points on the document and the real
distance between them.

Points are document pixel coordinates written as x,y. The distance is in
millimetres unless --unit in is given.

Examples:
  # A dimension line 250 mm long
  tiler scale --from 120,80 --to 620,80 --distance 250

  # Store the result as the default scale
  tiler scale --from 0,0 --to 0,300 --distance 12 --unit in --save`,
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().StringVar(&scaleFrom, "from", "", "first reference point as x,y")
	scaleCmd.Flags().StringVar(&scaleTo, "to", "", "second reference point as x,y")
	scaleCmd.Flags().Float64VarP(&scaleDistance, "distance", "d", 0, "known distance between the points")
	scaleCmd.Flags().StringVarP(&scaleUnit, "unit", "u", "mm", "unit of --distance (mm or in)")
	scaleCmd.Flags().BoolVar(&scaleSave, "save", false, "store the scale as the default")
	_ = scaleCmd.MarkFlagRequired("from")
	_ = scaleCmd.MarkFlagRequired("to")
	_ = scaleCmd.MarkFlagRequired("distance")
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, _ []string) error {
	if newMeasureSession == nil {
		return errors.New("measure service not configured")
	}

	unit, err := domain.ParseUnit(scaleUnit)
	if err != nil {
		return err
	}

	session, err := selectPair(scaleFrom, scaleTo)
	if err != nil {
		return err
	}
	pts := session.Points()

	scale, err := session.Calibrate(unit.ToMillimetres(scaleDistance))
	if err != nil {
		return fmt.Errorf("calibration failed: %w", err)
	}

	cmd.Printf("Pixel distance: %.2f px\n", pts[0].Distance(pts[1]))
	cmd.Printf("Scale: %s (%s)\n", scale, scale.Ratio())

	if scaleSave {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		if err := settingsService.SetScale(scale); err != nil {
			return fmt.Errorf("failed to save scale: %w", err)
		}
		cmd.Println("Saved as the default scale.")
	}

	return nil
}

// selectPair starts a fresh session with both points picked.
func selectPair(from, to string) (driving.MeasureService, error) {
	p1, err := parsePoint(from)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	p2, err := parsePoint(to)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}

	session := newMeasureSession()
	session.Select(p1)
	session.Select(p2)
	return session, nil
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("%w: point %q must be x,y", domain.ErrInvalidInput, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: point %q: bad x", domain.ErrInvalidInput, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: point %q: bad y", domain.ErrInvalidInput, s)
	}
	return domain.Point{X: x, Y: y}, nil
}

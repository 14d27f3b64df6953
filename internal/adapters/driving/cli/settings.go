package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the page layout, scale and printer calibration.

Use subcommands to change a single setting.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPaperCmd = &cobra.Command{
	Use:   "paper [name]",
	Short: "Set paper size",
	Long: `Set the paper size used for new grids.

Available sizes:
  A5, A4, A3, Letter, Legal, Tabloid`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsPaper,
}

var settingsOrientationCmd = &cobra.Command{
	Use:   "orientation [auto|portrait|landscape]",
	Short: "Set page orientation",
	Long: `Set the page orientation.

  auto      - Keep the paper as catalogued
  portrait  - Long edge vertical
  landscape - Long edge horizontal`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsOrientation,
}

var settingsGutterCmd = &cobra.Command{
	Use:   "gutter [mm]",
	Short: "Set gutter width",
	Long:  `Set the non-printable margin kept on every side of a page, in millimetres.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGutter,
}

var settingsUnitsCmd = &cobra.Command{
	Use:   "units [mm|in]",
	Short: "Set display units",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnits,
}

var settingsClearScaleCmd = &cobra.Command{
	Use:   "clear-scale",
	Short: "Forget the stored scale",
	Args:  cobra.NoArgs,
	RunE:  runSettingsClearScale,
}

var (
	calibrationHorizontal float64
	calibrationVertical   float64
)

var settingsCalibrationCmd = &cobra.Command{
	Use:   "calibration [portrait|landscape]",
	Short: "Set printer calibration",
	Long: `Record how far the printer shifts its output, in millimetres.

Print a test page, measure the horizontal and vertical offsets and store
them for the orientation you printed in. The larger of the two is added
to the gutter of every page printed in that orientation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsCalibration,
}

func init() {
	settingsCalibrationCmd.Flags().Float64Var(&calibrationHorizontal, "horizontal", 0, "horizontal offset in mm")
	settingsCalibrationCmd.Flags().Float64Var(&calibrationVertical, "vertical", 0, "vertical offset in mm")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPaperCmd)
	settingsCmd.AddCommand(settingsOrientationCmd)
	settingsCmd.AddCommand(settingsGutterCmd)
	settingsCmd.AddCommand(settingsUnitsCmd)
	settingsCmd.AddCommand(settingsCalibrationCmd)
	settingsCmd.AddCommand(settingsClearScaleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Page]")
	paper, err := domain.LookupPaper(settings.Tiling.PaperName)
	if err != nil {
		cmd.Printf("  Paper: %s\n", settings.Tiling.PaperName)
	} else {
		cmd.Printf("  Paper: %s\n", paper)
	}
	cmd.Printf("  Orientation: %s\n", settings.Tiling.Orientation.Description())
	cmd.Printf("  Gutter: %g mm\n", settings.Tiling.GutterMM)
	if settings.Tiling.MaxTiles > 0 {
		cmd.Printf("  Max pages: %d\n", settings.Tiling.MaxTiles)
	} else {
		cmd.Println("  Max pages: unlimited")
	}
	cmd.Println()

	cmd.Println("[Scale]")
	if settings.Scale.IsSet() {
		cmd.Printf("  Scale: %s (%s)\n", settings.Scale, settings.Scale.Ratio())
	} else {
		cmd.Println("  Scale: (not set)")
	}
	cmd.Printf("  Units: %s\n", settings.Display.Units)
	cmd.Printf("  PDF resolution: %d dpi\n", settings.Display.DPI)
	cmd.Println()

	cmd.Println("[Calibration]")
	cmd.Printf("  Portrait: %s\n", formatCalibration(settings.Calibration.Portrait))
	cmd.Printf("  Landscape: %s\n", formatCalibration(settings.Calibration.Landscape))

	return nil
}

func formatCalibration(c domain.PrintCalibration) string {
	return fmt.Sprintf("horizontal %g mm, vertical %g mm", c.HorizontalMM, c.VerticalMM)
}

func runSettingsPaper(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetPaper(args[0]); err != nil {
		return fmt.Errorf("failed to set paper: %w", err)
	}

	paper, err := domain.LookupPaper(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Paper set to: %s\n", paper)
	return nil
}

func runSettingsOrientation(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	o := domain.Orientation(strings.ToLower(args[0]))
	if !o.IsValid() {
		return fmt.Errorf("%w: orientation %q", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetOrientation(o); err != nil {
		return fmt.Errorf("failed to set orientation: %w", err)
	}

	cmd.Printf("Orientation set to: %s\n", o.Description())
	return nil
}

func runSettingsGutter(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	mm, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: gutter %q is not a number", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetGutter(mm); err != nil {
		return fmt.Errorf("failed to set gutter: %w", err)
	}

	cmd.Printf("Gutter set to: %g mm\n", mm)
	return nil
}

func runSettingsUnits(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	u, err := domain.ParseUnit(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetUnits(u); err != nil {
		return fmt.Errorf("failed to set units: %w", err)
	}

	cmd.Printf("Units set to: %s\n", u)
	return nil
}

func runSettingsCalibration(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	o := domain.Orientation(strings.ToLower(args[0]))
	c := domain.PrintCalibration{
		HorizontalMM: calibrationHorizontal,
		VerticalMM:   calibrationVertical,
	}
	if err := settingsService.SetCalibration(o, c); err != nil {
		return fmt.Errorf("failed to set calibration: %w", err)
	}

	cmd.Printf("%s calibration set to: %s\n", o.Description(), formatCalibration(c))
	return nil
}

func runSettingsClearScale(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.ClearScale(); err != nil {
		return fmt.Errorf("failed to clear scale: %w", err)
	}

	cmd.Println("Scale cleared.")
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage saved projects",
	Long: `Save a drawing together with its scale and page layout so it can be
printed again later without recalibrating.`,
}

var (
	projectID       string
	projectName     string
	projectDocument string
	projectWidth    float64
	projectHeight   float64
	projectScale    float64
	projectPaper    string
	projectOrient   string
	projectGutter   float64
	projectJSON     bool
)

var projectSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a project",
	Long: `Save a project. Values not given on the command line are taken from
the current settings. Pass --id to update an existing project.`,
	Args: cobra.NoArgs,
	RunE: runProjectSave,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a saved project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	flags := projectSaveCmd.Flags()
	flags.StringVar(&projectID, "id", "", "update the project with this ID")
	flags.StringVarP(&projectName, "name", "n", "", "project name")
	flags.StringVar(&projectDocument, "document", "", "drawing the project prints")
	flags.Float64Var(&projectWidth, "width", 0, "document width in pixels (default: read from --document)")
	flags.Float64Var(&projectHeight, "height", 0, "document height in pixels (default: read from --document)")
	flags.Float64VarP(&projectScale, "scale", "s", 0, "scale in mm per pixel (default: stored scale)")
	flags.StringVarP(&projectPaper, "paper", "p", "", "paper size (default: stored paper)")
	flags.StringVarP(&projectOrient, "orientation", "o", "", "page orientation (default: stored)")
	flags.Float64VarP(&projectGutter, "gutter", "g", 0, "gutter in mm (default: stored gutter)")
	_ = projectSaveCmd.MarkFlagRequired("name")

	projectShowCmd.Flags().BoolVar(&projectJSON, "json", false, "output as JSON")

	projectCmd.AddCommand(projectSaveCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectSave(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := commandContext(cmd)
	project := domain.Project{
		ID:           projectID,
		Name:         projectName,
		DocumentPath: projectDocument,
		DocWidth:     projectWidth,
		DocHeight:    projectHeight,
		Scale:        domain.ScaleFactor(projectScale),
		PaperName:    projectPaper,
		Orientation:  domain.Orientation(projectOrient),
		GutterMM:     projectGutter,
	}

	if projectID != "" {
		existing, err := projectService.Get(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}
		project.Reference = existing.Reference
	}

	if err := fillProjectDefaults(ctx, cmd, &project); err != nil {
		return err
	}

	saved, err := projectService.Save(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	cmd.Printf("Saved project %s (%s)\n", saved.Name, saved.ID)
	return nil
}

// fillProjectDefaults completes the project from the document and the
// stored settings for every flag that was not given.
func fillProjectDefaults(ctx context.Context, cmd *cobra.Command, project *domain.Project) error {
	if project.DocumentPath != "" && (project.DocWidth == 0 || project.DocHeight == 0) {
		if documentService == nil {
			return errors.New("document service not configured")
		}
		info, err := documentService.Inspect(ctx, project.DocumentPath)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		project.DocWidth = float64(info.Width)
		project.DocHeight = float64(info.Height)
	}

	if settingsService == nil {
		return nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if project.Scale == 0 {
		project.Scale = settings.Scale
	}
	if project.PaperName == "" {
		project.PaperName = settings.Tiling.PaperName
	}
	if project.Orientation == "" {
		project.Orientation = settings.Tiling.Orientation
	}
	if !cmd.Flags().Changed("gutter") {
		project.GutterMM = settings.Tiling.GutterMM
	}
	return nil
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	projects, err := projectService.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		cmd.Println("No projects saved.")
		return nil
	}

	cmd.Println("Projects:")
	for i := range projects {
		p := &projects[i]
		cmd.Printf("  %s  %s\n", p.ID, p.Name)
		if p.DocumentPath != "" {
			cmd.Printf("      Document: %s\n", p.DocumentPath)
		}
		cmd.Printf("      Scale: %s, %s %s\n", p.Scale, p.PaperName, p.Orientation)
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	p, err := projectService.Get(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if projectJSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("ID: %s\n", p.ID)
	cmd.Printf("Name: %s\n", p.Name)
	if p.DocumentPath != "" {
		cmd.Printf("Document: %s\n", p.DocumentPath)
	}
	cmd.Printf("Size: %.0f x %.0f px\n", p.DocWidth, p.DocHeight)
	if p.IsCalibrated() {
		cmd.Printf("Scale: %s (%s)\n", p.Scale, p.Scale.Ratio())
	} else {
		cmd.Println("Scale: (not set)")
	}
	cmd.Printf("Paper: %s, %s, gutter %g mm\n", p.PaperName, p.Orientation, p.GutterMM)
	cmd.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	cmd.Printf("Updated: %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	if err := projectService.Delete(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	cmd.Printf("Deleted project %s\n", args[0])
	return nil
}

// commandContext returns the command's context, or Background when the
// command runs outside ExecuteContext.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

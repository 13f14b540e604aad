package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wcfrobert/wthisj/internal/diagram"
	"github.com/wcfrobert/wthisj/internal/shear"
)

var (
	previewFile        string
	previewShowDiagram bool
	previewExportFile  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the shear perimeter geometry and section properties",
	Long: `Build the critical shear perimeter for a connection defined in a
JSON file and report its section properties without solving a load case.

Examples:
  wthisj preview --file interior-column.json
  wthisj preview -f corner.json --diagram -o perimeter.png`,
	Run: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "Path to connection JSON file [required]")
	previewCmd.MarkFlagRequired("file")

	previewCmd.Flags().BoolVar(&previewShowDiagram, "diagram", false, "Show ASCII plan view")
	previewCmd.Flags().StringVarP(&previewExportFile, "output", "o", "", "Export perimeter diagram to file (png, svg, pdf)")
}

func runPreview(cmd *cobra.Command, args []string) {
	model, err := shear.LoadModel(previewFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		return
	}

	sec, err := model.Build()
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}

	props, err := sec.Properties()
	if err != nil {
		fmt.Printf("Error computing section properties: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR PERIMETER PREVIEW")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if model.Name != "" {
		fmt.Printf("  Model: %s\n", model.Name)
		fmt.Println()
	}

	printGeometry(model, sec)
	printProperties(props)

	if !props.IsPrincipal() {
		fmt.Printf("  ⚠ Geometry is not in principal orientation. Rotate by %.2f°\n", props.ThetaP)
		fmt.Println("    or enable auto_rotate in the load case.")
		fmt.Println()
	}
	for _, warning := range sec.Warnings() {
		fmt.Printf("  ⚠ %s\n", warning)
	}

	if previewShowDiagram {
		fmt.Println(diagram.DrawASCIIPlan(planData(sec, nil)))
	}

	if previewExportFile != "" {
		if err := diagram.ExportPlanDiagram(planData(sec, nil), previewExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", previewExportFile)
		}
	}
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/stl-forge/internal/forge"
	"github.com/rcliao/stl-forge/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a 3D model",
		Long:  "Generate a printable STL mesh and store it in the catalogue. Pass only the parameters the shape needs.",
		Run:   runGenerate,
	}

	cmd.Flags().StringP("type", "t", "", "Model type: cube, cylinder, sphere, hollow_box (required)")
	cmd.Flags().Float64("size", 0, "Cube edge length (mm)")
	cmd.Flags().Float64("radius", 0, "Cylinder/sphere radius (mm)")
	cmd.Flags().Float64("height", 0, "Cylinder/box height (mm)")
	cmd.Flags().Int("segments", 0, "Resolution for curved surfaces")
	cmd.Flags().Float64("length", 0, "Box length (mm)")
	cmd.Flags().Float64("width", 0, "Box width (mm)")
	cmd.Flags().Float64("wall-thickness", 0, "Box wall thickness (mm)")
	cmd.Flags().String("category", "", "Optional category label")
	cmd.Flags().String("prompt", "", "Optional prompt describing this model")

	cmd.MarkFlagRequired("type")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	prompt, _ := cmd.Flags().GetString("prompt")

	if !model.ValidTypes[model.ModelType(typ)] {
		exitErr("generate", fmt.Errorf("unknown model type %q (want cube, cylinder, sphere, or hollow_box)", typ))
	}

	// Only explicitly set flags become parameters; the validator reports
	// whatever the shape is missing.
	params := map[string]float64{}
	for flag, name := range map[string]string{
		"size":           "size",
		"radius":         "radius",
		"height":         "height",
		"length":         "length",
		"width":          "width",
		"wall-thickness": "wall_thickness",
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetFloat64(flag)
			params[name] = v
		}
	}
	if cmd.Flags().Changed("segments") {
		v, _ := cmd.Flags().GetInt("segments")
		params["segments"] = float64(v)
	}

	svc, cat, err := openService()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer cat.Close()

	rec, err := svc.Generate(cmd.Context(), forge.GenerateParams{
		Spec:     model.ModelSpec{Type: model.ModelType(typ), Params: params},
		Category: category,
		Prompt:   prompt,
	})
	if err != nil {
		exitErr("generate", err)
	}

	b, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(b))
}

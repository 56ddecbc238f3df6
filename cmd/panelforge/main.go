// panelforge: parametric cabinet panel synthesis and joint resolution.
//
// Build:
//   go build -o panelforge ./cmd/panelforge

package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/woodshop-tools/panelforge/internal/engine"
	"github.com/woodshop-tools/panelforge/internal/export"
	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/logger"
	"github.com/woodshop-tools/panelforge/internal/mesh"
	"github.com/woodshop-tools/panelforge/internal/model"
	"github.com/woodshop-tools/panelforge/internal/project"
)

var (
	settingsPath string
	verbose      bool

	settings project.Settings
)

var rootCmd = &cobra.Command{
	Use:   "panelforge",
	Short: "Parametric cabinet panel synthesis and joint resolution",
	Long: `panelforge turns a tagged cabinet body into a resolved set of physical
panels: it extrudes a panel behind each tagged face, trims overlapping
panels by joint dominance, and generates plinth supports for floor-standing
bodies. Results can be exported as XLSX or PDF cut lists, QR part labels,
and DXF outlines.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = project.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		level := settings.Logging.Level
		if verbose {
			level = "debug"
		}
		return logger.Init(level, settings.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var (
	bodyWidth     float64
	bodyHeight    float64
	bodyDepth     float64
	thickness     float64
	hanging       bool
	withBack      bool
	withDoor      bool
	expandCorners bool
	profileID     string
	profilesDir   string
	outXLSX       string
	outPDF        string
	outLabels     string
	outDXF        string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize and resolve the panels of a box body",
	Long: `Builds a rectangular cabinet body, tags its left, right, top, and bottom
faces (plus back and door on request), synthesizes a panel behind each
tagged face, and resolves joint conflicts. The resulting cut list is
printed and optionally exported.`,
	RunE: runSynth,
}

var facesCmd = &cobra.Command{
	Use:   "faces [mesh.json]",
	Short: "List the planar face groups of a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage configuration profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfilesList,
}

var profilesInitCmd = &cobra.Command{
	Use:   "init [profile-id]",
	Short: "Create a profile with default joint and back-panel configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesInit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	synthCmd.Flags().Float64Var(&bodyWidth, "width", 600, "body width in mm")
	synthCmd.Flags().Float64Var(&bodyHeight, "height", 720, "body height in mm")
	synthCmd.Flags().Float64Var(&bodyDepth, "depth", 560, "body depth in mm")
	synthCmd.Flags().Float64Var(&thickness, "thickness", 18, "panel thickness in mm")
	synthCmd.Flags().BoolVar(&hanging, "hanging", false, "hanging body (no plinth)")
	synthCmd.Flags().BoolVar(&withBack, "back", false, "tag the back face")
	synthCmd.Flags().BoolVar(&withDoor, "door", false, "tag the front face as a door")
	synthCmd.Flags().BoolVar(&expandCorners, "expand-corners", false, "expand all four corners (sides yield to top and bottom)")
	synthCmd.Flags().StringVar(&profileID, "profile", "", "configuration profile to resolve with")
	synthCmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "profile store directory")
	synthCmd.Flags().StringVar(&outXLSX, "xlsx", "", "write the cut list to an XLSX workbook")
	synthCmd.Flags().StringVar(&outPDF, "pdf", "", "write a PDF sheet with a front-view drawing")
	synthCmd.Flags().StringVar(&outLabels, "labels", "", "write QR part labels as PDF")
	synthCmd.Flags().StringVar(&outDXF, "dxf", "", "write panel outlines as DXF")

	profilesListCmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "profile store directory")
	profilesInitCmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "profile store directory")

	profilesCmd.AddCommand(profilesListCmd, profilesInitCmd)
	rootCmd.AddCommand(synthCmd, facesCmd, profilesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// groupTolerance converts the settings tolerances into grouping thresholds.
func groupTolerance() mesh.GroupTolerance {
	tol := mesh.DefaultGroupTolerance()
	if settings.Tolerance.AngleDegrees > 0 {
		tol.CosAngle = math.Cos(settings.Tolerance.AngleDegrees * math.Pi / 180)
	}
	if settings.Tolerance.Distance > 0 {
		tol.Distance = settings.Tolerance.Distance
	}
	return tol
}

// assignRoles tags face groups by their outward normal: left and right by X,
// top and bottom by Y, back and door by Z.
func assignRoles(groups []mesh.FaceGroup) map[int]model.Role {
	byNormal := map[geom.Vec3]model.Role{
		{X: -1}: model.RoleLeft,
		{X: 1}:  model.RoleRight,
		{Y: 1}:  model.RoleTop,
		{Y: -1}: model.RoleBottom,
	}
	if withBack {
		byNormal[geom.Vec3{Z: -1}] = model.RoleBack
	}
	if withDoor {
		byNormal[geom.Vec3{Z: 1}] = model.RoleDoor
	}

	roles := make(map[int]model.Role)
	for i, g := range groups {
		for dir, role := range byNormal {
			if g.Normal.Dot(dir) > 0.999 {
				roles[i] = role
			}
		}
	}
	return roles
}

func runSynth(cmd *cobra.Command, args []string) error {
	store, err := project.NewStore(profilesDir)
	if err != nil {
		return err
	}
	jc, err := store.JointConfig(profileID)
	if err != nil {
		return err
	}
	bc, err := store.BackPanelConfig(profileID)
	if err != nil {
		return err
	}
	if expandCorners {
		jc.TopLeftExpanded = true
		jc.TopRightExpanded = true
		jc.BottomLeftExpanded = true
		jc.BottomRightExpanded = true
	}

	bodyType := model.BodyBase
	if hanging {
		bodyType = model.BodyHanging
	}
	body := model.Body{
		ID:     "body-1",
		Type:   bodyType,
		Bounds: geom.NewBox3(geom.Vec3{}, geom.Vec3{X: bodyWidth, Y: bodyHeight, Z: bodyDepth}),
		Plinth: model.DefaultPlinthConfig(),
	}

	k := kernel.BoxKernel{}
	m, err := k.ToMesh(kernel.NewBox(body.Bounds.Min, body.Bounds.Max))
	if err != nil {
		return err
	}

	syn := engine.NewSynthesizer()
	syn.Tol = groupTolerance()

	groups := mesh.GroupCoplanar(mesh.ExtractFaces(m), syn.Tol)
	roles := assignRoles(groups)
	if len(roles) == 0 {
		return fmt.Errorf("no face groups could be tagged")
	}

	panels, err := syn.SynthesizePanels(body, m, roles, thickness, jc, bc)
	if err != nil {
		return err
	}
	logger.Log.Info("panels synthesized",
		zap.String("body", body.ID),
		zap.Int("panels", len(panels)))

	resolver := engine.NewResolver(k, logger.Log)
	panels = resolver.Resolve(cmd.Context(), body, panels, jc)

	printCutList(cmd, body, panels)

	if outXLSX != "" {
		if err := export.ExportXLSX(outXLSX, body, panels); err != nil {
			return err
		}
		cmd.Printf("cut list written to %s\n", outXLSX)
	}
	if outPDF != "" {
		if err := export.ExportPDF(outPDF, body, panels); err != nil {
			return err
		}
		cmd.Printf("PDF sheet written to %s\n", outPDF)
	}
	if outLabels != "" {
		if err := export.ExportLabels(outLabels, body, panels); err != nil {
			return err
		}
		cmd.Printf("labels written to %s\n", outLabels)
	}
	if outDXF != "" {
		if err := export.ExportDXF(outDXF, panels); err != nil {
			return err
		}
		cmd.Printf("DXF outlines written to %s\n", outDXF)
	}
	return nil
}

func printCutList(cmd *cobra.Command, body model.Body, panels []model.Panel) {
	size := body.Bounds.Size()
	cmd.Printf("Body %s (%.0f x %.0f x %.0f mm, %s): %d panels\n\n",
		body.ID, size.X, size.Y, size.Z, body.Type, len(panels))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tROLE\tWIDTH\tHEIGHT\tTHICKNESS\tTRIMMED")
	for _, p := range panels {
		width, height, th := export.PanelDims(p)
		trimmed := ""
		if p.JointTrimmed {
			trimmed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%s\n",
			p.ID, p.Role, width, height, th, trimmed)
	}
	w.Flush()
}

func runFaces(cmd *cobra.Command, args []string) error {
	m, err := mesh.LoadJSON(args[0])
	if err != nil {
		return err
	}

	faces := mesh.ExtractFaces(m)
	groups := mesh.GroupCoplanar(faces, groupTolerance())

	cmd.Printf("%d triangles, %d planar face groups\n\n", m.TriangleCount(), len(groups))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tTRIANGLES\tNORMAL\tOFFSET")
	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%d\t(%.3f, %.3f, %.3f)\t%.3f\n",
			g.Index, len(g.Triangles), g.Normal.X, g.Normal.Y, g.Normal.Z, g.Offset)
	}
	return w.Flush()
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	store, err := project.NewStore(profilesDir)
	if err != nil {
		return err
	}
	ids, err := store.ListProfiles()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		cmd.Println("no profiles stored")
		return nil
	}
	for _, id := range ids {
		cmd.Println(id)
	}
	return nil
}

func runProfilesInit(cmd *cobra.Command, args []string) error {
	store, err := project.NewStore(profilesDir)
	if err != nil {
		return err
	}
	id := args[0]
	if err := store.SaveJointConfig(id, model.DefaultJointConfig()); err != nil {
		return err
	}
	if err := store.SaveBackPanelConfig(id, model.DefaultBackPanelConfig()); err != nil {
		return err
	}
	cmd.Printf("profile %s created under %s\n", id, store.Dir)
	return nil
}

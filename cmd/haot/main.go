package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/haot/internal/config"
	"github.com/san-kum/haot/internal/dataset"
	"github.com/san-kum/haot/internal/experiment"
	"github.com/san-kum/haot/internal/export"
	"github.com/san-kum/haot/internal/optics"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/storage"
	"github.com/san-kum/haot/internal/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	// run overrides
	preset      string
	molecule    string
	wavelength  float64
	energyModel string
	noSave      bool
	// index
	incident   float64
	pathLength float64
	// gd
	empirical bool
	// explore
	theme string
	// export
	outPath string
	width   int
	height  int

	cfg *config.Config
)

var header = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)

func main() {
	rootCmd := &cobra.Command{
		Use:          "haot",
		Short:        "hypersonic aero-optics toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(cfg, theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "run store directory (default data_dir from the config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&theme, "theme", "", "explorer theme: "+strings.Join(viz.ThemeNames(), ", "))

	indexCmd := &cobra.Command{
		Use:   "index [species=density ...]",
		Short: "index of refraction of a gas mixture (densities in kg/m^3)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  indexOfRefraction,
	}
	indexCmd.Flags().Float64Var(&incident, "incident", 0, "index of the incident medium (default from config)")
	indexCmd.Flags().Float64Var(&pathLength, "length", 0, "geometric path length in m (default from config)")

	gdCmd := &cobra.Command{
		Use:   "gd [species=density ...]",
		Short: "Gladstone-Dale constants, per species or for a mixture",
		RunE:  gladstoneDale,
	}
	gdCmd.Flags().BoolVar(&empirical, "empirical", false, "use the Karl (2003) constants")

	runCmd := &cobra.Command{
		Use:   "run [experiment]",
		Short: "run an experiment",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExperiment,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&molecule, "molecule", "", "molecule")
	runCmd.Flags().Float64Var(&wavelength, "wavelength", 0, "wavelength in nm")
	runCmd.Flags().StringVar(&energyModel, "energy-model", "", "separable or coupled")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [csv ...]",
		Short: "optical profile of CFD heat-bath outputs",
		RunE:  analyzeDatasets,
	}
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run series to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&width, "width", 800, "width in px")
	exportSVGCmd.Flags().IntVar(&height, "height", 400, "height in px")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default <run_id>.json)")

	presetsCmd := &cobra.Command{
		Use:   "presets [experiment]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiments := config.ListExperiments()
			if len(args) > 0 {
				experiments = args
			}
			for _, exp := range experiments {
				presets := config.ListPresets(exp)
				if len(presets) == 0 {
					fmt.Printf("no presets for experiment: %s\n", exp)
					continue
				}
				fmt.Printf("presets for %s:\n", exp)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive polarizability explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(cfg, theme)
		},
	}
	exploreCmd.Flags().StringVar(&theme, "theme", "", "explorer theme: "+strings.Join(viz.ThemeNames(), ", "))

	rootCmd.AddCommand(indexCmd, gdCmd, runCmd, analyzeCmd, listCmd, plotCmd, exportSVGCmd, exportJSONCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() error {
	if configFile == "" {
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.WithField("config", configFile).Debug("loaded config")
	}
	dataDir = storeDir(dataDir, cfg)
	return nil
}

func indexOfRefraction(cmd *cobra.Command, args []string) error {
	c, err := parseComposition(args)
	if err != nil {
		return err
	}
	n, err := optics.IndexOfRefraction(c)
	if err != nil {
		return err
	}

	if incident == 0 {
		incident = cfg.IncidentIndex
	}
	if pathLength == 0 {
		pathLength = cfg.PathLengthM
	}
	r := optics.Reflectivity(n, incident)
	eps := optics.DielectricMaterialConst(n)
	opl := optics.OpticalPathLength(n, pathLength)

	fmt.Println(header.Render("index of refraction"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tDILUTE\tDENSE")
	fmt.Fprintf(w, "n\t%.10f\t%.10f\n", n.Dilute, n.Dense)
	fmt.Fprintf(w, "n-1\t%.6e\t%.6e\n", n.Dilute-1, n.Dense-1)
	fmt.Fprintf(w, "reflectivity (n0=%g)\t%.6e\t%.6e\n", incident, r.Dilute, r.Dense)
	fmt.Fprintf(w, "permittivity [F/m]\t%.6e\t%.6e\n", eps.Dilute, eps.Dense)
	fmt.Fprintf(w, "optical path (%g m)\t%.10f\t%.10f\n", pathLength, opl.Dilute, opl.Dense)
	return w.Flush()
}

func gladstoneDale(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if len(args) == 0 {
		computed := optics.GladstoneDaleConstants()
		karl := species.Karl2003()
		fmt.Println(header.Render("Gladstone-Dale constants [m^3/kg]"))
		fmt.Fprintln(w, "SPECIES\tCOMPUTED\tKARL 2003")
		for _, name := range sortedKeys(computed) {
			k := "-"
			if v, ok := karl[name]; ok {
				k = fmt.Sprintf("%.4e", v)
			}
			fmt.Fprintf(w, "%s\t%.4e\t%s\n", name, computed[name], k)
		}
		return w.Flush()
	}

	c, err := parseComposition(args)
	if err != nil {
		return err
	}
	mix := optics.GladstoneDale
	if empirical {
		mix = optics.EmpiricalGladstoneDale
	}
	m, err := mix(c)
	if err != nil {
		return err
	}

	fmt.Println(header.Render("Gladstone-Dale mixture [m^3/kg]"))
	fmt.Fprintln(w, "SPECIES\tCONTRIBUTION")
	for _, name := range sortedKeys(m.Species) {
		fmt.Fprintf(w, "%s\t%.6e\n", name, m.Species[name])
	}
	fmt.Fprintf(w, "total\t%.6e\n", m.Total)
	return w.Flush()
}

func runExperiment(cmd *cobra.Command, args []string) error {
	name := cfg.Experiment
	if len(args) > 0 {
		name = args[0]
	}

	run := cfg.Clone()
	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		run = p
	}
	run.Experiment = name
	if cmd.Flags().Changed("molecule") {
		run.Molecule = molecule
	}
	if cmd.Flags().Changed("wavelength") {
		run.WavelengthNM = wavelength
	}
	if cmd.Flags().Changed("energy-model") {
		run.EnergyModel = energyModel
	}
	if err := run.Validate(); err != nil {
		return err
	}

	res, err := experiment.NewRegistry().Run(context.Background(), run)
	if err != nil {
		return err
	}

	fmt.Printf("experiment: %s\n", res.Name)
	if !noSave {
		runID, err := saveResult(res, run)
		if err != nil {
			return err
		}
		fmt.Printf("run: %s\n", runID)
	}
	fmt.Println()
	return printMetrics(res)
}

func analyzeDatasets(cmd *cobra.Command, args []string) error {
	var (
		sets []*dataset.Dataset
		err  error
	)
	if len(args) > 0 {
		for _, path := range args {
			d, err := dataset.Load(path)
			if err != nil {
				return err
			}
			sets = append(sets, d)
		}
	} else {
		sets, err = dataset.LoadAll(cfg.InputDir, cfg.Files)
		if err != nil {
			return err
		}
	}
	if len(sets) == 0 {
		return fmt.Errorf("no csv files in %s", cfg.InputDir)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATASET\tGAS\tIONS\tSAMPLES\tMAX n-1\tMAX GD [m^3/kg]\tRUN")
	for _, d := range sets {
		res, err := experiment.Profile(context.Background(), d)
		if err != nil {
			return err
		}
		runID := "-"
		if !noSave {
			if runID, err = saveResult(res, nil); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%.4e\t%.4e\t%s\n",
			d.Name, d.GasType, d.HasIons, d.Len(),
			res.Metrics["dilute.peak"], res.Metrics[optics.TotalKey+".peak"], runID)
	}
	return w.Flush()
}

func saveResult(res *experiment.Result, run *config.Config) (string, error) {
	st := storage.New(dataDir)
	runID, err := st.Save(res, run)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"run": runID, "dir": dataDir}).Debug("stored run")
	return runID, nil
}

func printMetrics(res *experiment.Result) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, k := range sortedKeys(res.Metrics) {
		fmt.Fprintf(w, "%s\t%.6g\n", k, res.Metrics[k])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXPERIMENT\tTIME\tMOLECULE\tSAMPLES\tCOLUMNS")

	for _, run := range runs {
		mol := run.Molecule
		if mol == "" {
			mol = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Experiment,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			mol,
			run.Samples,
			strings.Join(run.Columns, ","),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if len(res.X) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("experiment: %s\n", res.Name)
	fmt.Printf("samples: %d (%s)\n\n", len(res.X), res.XLabel)

	const maxPlots = 6
	for i, column := range res.Columns {
		if i == maxPlots {
			fmt.Printf("%d more columns not shown\n", len(res.Columns)-maxPlots)
			break
		}
		data := plottable(res.Series[i])
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", column, res.XLabel)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	svg := export.ResultToSVG(res, width, height)
	if svg == "" {
		return fmt.Errorf("run %s has nothing to draw", runID)
	}

	path, err := outputPath(runID, ".svg")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	path, err := outputPath(runID, ".json")
	if err != nil {
		return err
	}
	if err := export.ResultToJSON(path, res); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// outputPath resolves the export target and creates its directory.
func outputPath(runID, ext string) (string, error) {
	path := exportPath(outPath, cfg.OutputDir, runID, ext)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}

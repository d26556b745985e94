package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/conway/internal/automation"
	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/export"
	"github.com/san-kum/conway/internal/game"
	"github.com/san-kum/conway/internal/grid"
	"github.com/san-kum/conway/internal/metrics"
	"github.com/san-kum/conway/internal/storage"
	"github.com/san-kum/conway/internal/tui"
)

var (
	dataDir     string
	configFile  string
	alive       string
	dead        string
	delay       time.Duration
	view        string
	width       uint64
	height      uint64
	pattern     string
	generations int
	plain       bool
	save        bool
	outPath     string
	chartPath   string
	scale       float64
	workers     int
	theme       string
)

// main registers the life commands and flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "life",
		Short:        "conway's game of life on an unbounded grid",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".life", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "print generations to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGame,
	}
	addGameFlags(runCmd)
	runCmd.Flags().BoolVar(&plain, "plain", false, "append frames without clearing the screen")
	runCmd.Flags().BoolVar(&save, "save", false, "record run statistics in the data directory")

	playCmd := &cobra.Command{
		Use:   "play [file|-]",
		Short: "interactive player with scrolling and statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playGame,
	}
	addGameFlags(playCmd)
	addThemeFlag(playCmd)

	checkCmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "parse a pattern and describe it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkPattern,
	}
	checkCmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "built-in pattern when no file is given")

	patternsCmd := &cobra.Command{
		Use:   "patterns [name]",
		Short: "list built-in patterns or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPatterns,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the population of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a yaml scenario of patterns headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&save, "save", false, "record each run in the data directory")
	batchCmd.Flags().IntVarP(&workers, "parallel", "p", 1, "number of steps to run at once")

	svgCmd := &cobra.Command{
		Use:   "svg [file|-]",
		Short: "export the viewport after some generations as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addGameFlags(svgCmd)
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "life.svg", "output svg path")
	svgCmd.Flags().StringVar(&chartPath, "chart", "", "also write a population chart svg to this path (needs --generations)")
	addThemeFlag(svgCmd)
	svgCmd.Flags().Float64Var(&scale, "scale", 10, "pixels per cell")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(runCmd, playCmd, checkCmd, patternsCmd, listCmd, plotCmd, batchCmd, svgCmd, configCmd)
	return rootCmd
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&alive, "alive", config.DefaultAlive, "glyph for live cells")
	cmd.Flags().StringVar(&dead, "dead", config.DefaultDead, "glyph for dead cells")
	cmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause between generations")
	cmd.Flags().StringVar(&view, "view", game.Centered.String(), "view mode: centered, fixed or follow")
	cmd.Flags().Uint64Var(&width, "width", 0, "viewport width (0 derives it from the pattern)")
	cmd.Flags().Uint64Var(&height, "height", 0, "viewport height (0 derives it from the pattern)")
	cmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "built-in pattern when no file is given")
	cmd.Flags().IntVar(&generations, "generations", 0, "stop after this many generations (0 runs until extinction)")
}

func addThemeFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", tui.ThemeCyberpunk.Name,
		"color theme: "+strings.Join(tui.ThemeNames(), ", "))
}

// loadConfig layers the config file over the defaults, then any flag the
// user set explicitly over the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("alive") {
		cfg.Alive = alive
	}
	if flags.Changed("dead") {
		cfg.Dead = dead
	}
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("view") {
		v, err := game.ParseView(view)
		if err != nil {
			return nil, err
		}
		cfg.View = v
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadGrid reads the pattern named by args, "-" meaning stdin, or falls back
// to the configured built-in pattern. It also returns a display name.
func loadGrid(cmd *cobra.Command, cfg *config.Config, args []string) (*grid.Grid, string, error) {
	if len(args) == 0 {
		g, err := config.GetPattern(cfg.Pattern)
		return g, cfg.Pattern, err
	}

	var (
		data []byte
		err  error
		name string
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		name = "stdin"
	} else {
		data, err = os.ReadFile(args[0])
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	if err != nil {
		return nil, "", err
	}

	syn, err := cfg.GridSyntax()
	if err != nil {
		return nil, "", err
	}
	g, err := grid.ParseWith(string(data), syn)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	return g, name, nil
}

func newGame(cmd *cobra.Command, args []string) (*game.Game, *config.Config, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, "", err
	}
	g, name, err := loadGrid(cmd, cfg, args)
	if err != nil {
		return nil, nil, "", err
	}
	gm, err := game.New(g, cfg.Settings(), cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, "", err
	}
	return gm, cfg, name, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	gm, cfg, name, err := newGame(cmd, args)
	if err != nil {
		return err
	}

	ms := metrics.Defaults()
	history := metrics.NewHistory(0)
	metrics.Observe(ms, gm.Grid())
	history.OnTick(0, gm.Grid())
	for _, m := range ms {
		gm.AddObserver(m)
	}
	gm.AddObserver(history)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	r := tui.NewLiveRenderer(out, name, plain)
	if err := r.Start(); err != nil {
		return err
	}

	start := time.Now()
	err = r.Render(gm.Draw(), gm.Generation(), gm.Population())
	frames := gm.Frames().WithDelay(cfg.Delay > 0)
	for err == nil && ctx.Err() == nil {
		if cfg.Generations > 0 && gm.Generation() >= cfg.Generations {
			break
		}
		frame, ok := frames.Next()
		if !ok {
			break
		}
		err = r.Render(frame, gm.Generation(), gm.Population())
	}
	if stopErr := r.Stop(); err == nil {
		err = stopErr
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "\ncompleted in %v\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "generations: %d\n", gm.Generation())
	if gm.IsOver() {
		fmt.Fprintln(out, "outcome: extinct")
	}
	values := metrics.Collect(ms)
	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range ms {
		fmt.Fprintf(out, "  %s: %.2f\n", m.Name(), values[m.Name()])
	}

	if !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	vp := gm.ViewportState()
	runID, err := st.Save(storage.RunMetadata{
		Pattern:     name,
		View:        cfg.View.String(),
		Width:       vp.Width,
		Height:      vp.Height,
		Generations: gm.Generation(),
		Extinct:     gm.IsOver(),
		Metrics:     values,
	}, history)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

func playGame(cmd *cobra.Command, args []string) error {
	if err := tui.SetTheme(theme); err != nil {
		return err
	}
	gm, cfg, name, err := newGame(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(gm, name, cfg.Generations)
}

func checkPattern(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, name, err := loadGrid(cmd, cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lo, hi := g.Bounds()
	fmt.Fprintf(out, "pattern: %s\n", name)
	fmt.Fprintf(out, "population: %d\n", g.Len())
	if g.IsEmpty() {
		return nil
	}
	fmt.Fprintf(out, "bounds: %v..%v\n", lo, hi)
	fmt.Fprintf(out, "size: %dx%d\n", hi.X-lo.X+1, hi.Y-lo.Y+1)
	fmt.Fprintf(out, "midpoint: %v\n", g.Midpoint())
	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		g, err := config.GetPattern(args[0])
		if err != nil {
			return err
		}
		lo, hi := g.Bounds()
		fmt.Fprint(out, g.Render(lo, hi, grid.ReadCharAlive, grid.ReadCharDead))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCELLS\tSIZE")
	for _, name := range config.ListPatterns() {
		g, err := config.GetPattern(name)
		if err != nil {
			return err
		}
		lo, hi := g.Bounds()
		fmt.Fprintf(w, "%s\t%d\t%dx%d\n", name, g.Len(), hi.X-lo.X+1, hi.Y-lo.Y+1)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tVIEW\tGENERATIONS\tPEAK\tEXTINCT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.0f\t%t\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.View,
			run.Generations,
			run.Metrics["peak_population"],
			run.Extinct,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, pops, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "pattern: %s\n", meta.Pattern)
	fmt.Fprintf(out, "generations: %d\n\n", meta.Generations)

	graph := asciigraph.Plot(pops,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population vs generation"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	var outcomes []automation.Outcome
	if workers > 1 {
		fmt.Fprintf(out, "Running %d steps on %d workers\n", len(scenario.Steps), workers)
		outcomes, err = automation.RunParallel(ctx, scenario, workers)
	} else {
		outcomes, err = automation.RunScenario(ctx, scenario, out)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tGENERATIONS\tPOPULATION\tPEAK\tEXTINCT")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%t\n",
			o.Step.Pattern, o.Generations, o.Metrics["population"], o.Metrics["peak_population"], o.Extinct)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	extinct, surviving := automation.ExtinctionStats(outcomes)
	fmt.Fprintf(out, "\nextinct: %d, surviving: %d\n", extinct, surviving)

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for _, o := range outcomes {
		runID, err := st.Save(storage.RunMetadata{
			Pattern:     o.Step.Pattern,
			View:        o.Step.View.String(),
			Width:       o.Step.Width,
			Height:      o.Step.Height,
			Generations: o.Generations,
			Extinct:     o.Extinct,
			Metrics:     o.Metrics,
		}, o.History)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	if err := tui.SetTheme(theme); err != nil {
		return err
	}
	gm, cfg, name, err := newGame(cmd, args)
	if err != nil {
		return err
	}
	if chartPath != "" && cfg.Generations == 0 {
		return fmt.Errorf("--chart needs --generations above 0 to have a population series")
	}

	history := metrics.NewHistory(0)
	history.OnTick(0, gm.Grid())
	gm.AddObserver(history)
	for gm.Generation() < cfg.Generations && !gm.IsOver() {
		gm.Tick()
	}

	lo, hi := gm.Viewport()
	if err := os.WriteFile(outPath, []byte(export.GridToSVG(gm.Grid(), lo, hi, scale)), 0644); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %s (%s, generation %d)\n", outPath, name, gm.Generation())

	if chartPath == "" {
		return nil
	}
	chart := export.PopulationToSVG(history.Populations(), 600, 200, string(tui.CurrentTheme.Accent))
	if chart == "" {
		return fmt.Errorf("no data to chart: the pattern died at generation %d", gm.Generation())
	}
	if err := os.WriteFile(chartPath, []byte(chart), 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", chartPath)
	return nil
}

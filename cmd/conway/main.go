package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/gui"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/tui"
)

var (
	// Config file
	configFile string
	// Preset name
	preset string
	// Startup overrides
	pattern    string
	themeName  string
	advanceKey string
	windowSize int
	cellSize   int
	frameRate  int
	// Log file for the terminal frontend
	logFile string
	// Grid size for show
	showSize int
	// Output path for config --save
	savePath string
)

// main registers commands and flags, opens the window when no subcommand is
// given, and exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "conway",
		Short:        "conway's game of life, one generation per key press",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.StringVar(&pattern, "pattern", "", "seed the board with a named pattern")
	flags.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	flags.StringVar(&advanceKey, "advance-key", config.DefaultAdvanceKey, "key that advances one generation")
	flags.IntVar(&windowSize, "window", config.DefaultWindowSize, "window size in pixels")
	flags.IntVar(&cellSize, "cell", config.DefaultCellSize, "cell size in pixels")
	flags.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate cap")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, logFile)
		},
	}
	tuiCmd.Flags().StringVar(&logFile, "log", "", "write debug log to file")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		RunE:  listPatterns,
	}

	showCmd := &cobra.Command{
		Use:   "show [pattern]",
		Short: "print a pattern as text (default " + patterns.DefaultName + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPattern,
	}
	showCmd.Flags().IntVar(&showSize, "size", 0, "grid size (default: smallest that fits, plus a margin)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %dx%d %s\n", name, p.GridSize(), p.GridSize(), p.Pattern)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if savePath != "" {
				if err := config.Save(savePath, cfg); err != nil {
					return err
				}
				fmt.Printf("saved config to %s\n", savePath)
				return nil
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	configCmd.Flags().StringVar(&savePath, "save", "", "write the effective configuration to a file instead of stdout")

	rootCmd.AddCommand(tuiCmd, patternsCmd, showCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the startup configuration from --preset, --config
// and whichever flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var overrides []config.Override
	if flags.Changed("pattern") {
		overrides = append(overrides, func(c *config.Config) { c.Pattern = pattern })
	}
	if flags.Changed("theme") {
		overrides = append(overrides, func(c *config.Config) { c.Theme = themeName })
	}
	if flags.Changed("advance-key") {
		overrides = append(overrides, func(c *config.Config) { c.AdvanceKey = advanceKey })
	}
	if flags.Changed("window") {
		overrides = append(overrides, func(c *config.Config) { c.WindowSize = windowSize })
	}
	if flags.Changed("cell") {
		overrides = append(overrides, func(c *config.Config) { c.CellSize = cellSize })
	}
	if flags.Changed("fps") {
		overrides = append(overrides, func(c *config.Config) { c.FPS = frameRate })
	}
	return config.Resolve(preset, configFile, overrides...)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	groups := patterns.ByCategory()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tCELLS\tPERIOD")
	for _, category := range patterns.Categories() {
		for _, name := range groups[category] {
			p := patterns.Lookup(name)
			period := "-"
			if p.Period > 0 {
				period = fmt.Sprintf("%d", p.Period)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", category, name, len(p.Cells), period)
		}
	}
	return w.Flush()
}

func showPattern(cmd *cobra.Command, args []string) error {
	name := patterns.DefaultName
	if len(args) > 0 {
		name = args[0]
	}
	p := patterns.Lookup(name)
	if p == nil {
		return fmt.Errorf("unknown pattern: %s (available: %v)", name, patterns.Names())
	}

	n := showSize
	if n <= 0 {
		for !p.Fits(n) {
			n++
		}
		n += 4
	}

	g := life.NewGrid(n)
	if skipped := patterns.Place(g, p); skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d cells outside %dx%d grid\n", skipped, n, n)
	}
	fmt.Printf("%s (%s)\n", p.Name, p.Category)
	fmt.Print(g.String())
	return nil
}

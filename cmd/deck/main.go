package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/deck/internal/config"
	"github.com/ensigniasec/deck/internal/export"
	"github.com/ensigniasec/deck/internal/location"
	"github.com/ensigniasec/deck/internal/slides"
	"github.com/ensigniasec/deck/internal/storage"
	"github.com/ensigniasec/deck/internal/theme"
	"github.com/ensigniasec/deck/internal/tui"
	"github.com/ensigniasec/deck/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	verbose    bool
	jsonOutput bool
	startAt    string
	noBackdrop bool

	rootCmd = &cobra.Command{
		Use:   "deck [DECK_FILE[#slide-N]]",
		Short: "A keyboard, mouse and wheel driven slide deck for the terminal.",
		Long: `Presents a deck of slides as a horizontally sliding strip with animated transitions.
Slides are addressable as #slide-N, a countdown runs on the arena slide, and the companion guide can be exported as a PDF.
Without a DECK_FILE the bundled "Vibe Coding" talk is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPresent,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.Flags().StringVar(&startAt, "at", "", "Start on a slide: N, slide-N or #slide-N (overrides the fragment in DECK_FILE)")
	rootCmd.Flags().BoolVar(&noBackdrop, "no-backdrop", false, "Disable the animated background")

	outlineCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the outline in JSON format instead of text")
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output deck paths as a JSON array")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(themeCmd)

	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeSetCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

// loadSettings reads the config file and applies the logging flags.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	switch {
	case verbose:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
			logrus.SetLevel(lvl)
		}
	}
	return cfg, nil
}

// openStore returns the state file as a theme store. The store is best
// effort: a nil return means preferences are kept in memory only.
func openStore(cfg *config.Config) theme.Store {
	st, err := storage.NewOrExistingStorage(cfg.Storage.Path)
	if err != nil {
		logrus.Warnf("state file unavailable, preferences will not persist: %v", err)
		return nil
	}
	return st
}

// resolveDeck splits DECK_FILE[#slide-N] and loads the deck. The config's
// deck is used when no file is given, and the bundled deck when neither is.
func resolveDeck(cfg *config.Config, args []string) (*slides.Registry, string, error) {
	var target string
	if len(args) > 0 {
		target = args[0]
	}
	path, fragment := location.SplitTarget(target)
	if path == "" {
		path = cfg.Deck
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, "", err
	}
	d, err := slides.LoadOrDefault(path)
	if err != nil {
		return nil, "", err
	}
	return slides.NewRegistry(d), fragment, nil
}

// normalizeAt accepts "3", "slide-3" and "#slide-3".
func normalizeAt(at string) string {
	if at == "" {
		return ""
	}
	if strings.Trim(at, "0123456789") == "" {
		return "#slide-" + at
	}
	if !strings.HasPrefix(at, "#") {
		return "#" + at
	}
	return at
}

func runPresent(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if noBackdrop {
		cfg.Backdrop.Enabled = false
	}
	reg, fragment, err := resolveDeck(cfg, args)
	if err != nil {
		return err
	}
	if startAt != "" {
		fragment = normalizeAt(startAt)
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("presenting needs an interactive terminal; use 'deck outline' for plain output")
	}

	if fragment != "" {
		if _, err := location.Parse(fragment, reg.Count()); err != nil {
			logrus.WithField("fragment", fragment).Warnf("ignoring deep link: %v", err)
		}
	}

	return tui.Run(cmd.Context(), tui.Options{
		Registry: reg,
		Config:   cfg,
		Fragment: fragment,
		Store:    openStore(cfg),
	})
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var exportCmd = &cobra.Command{
	Use:   "export [OUT]",
	Short: "Write the companion guide as an A4 PDF",
	Long:  "Write the multi-page Vibe Coding guide (the shift, the mental framework, tools, the colosseum and a Google AI Studio guide) to a PDF file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		out := cfg.Export.Path
		if len(args) > 0 {
			out = args[0]
		}
		if out, err = config.ExpandPath(out); err != nil {
			return err
		}
		if err := export.WriteFile(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Guide written to %s\n", out)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var listCmd = &cobra.Command{
	Use:   "list [DIR]",
	Short: "Find deck files (*.deck.yaml, *.deck.yml) below a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		paths, err := slides.Discover(cmd.Context(), root)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonOutput {
			if paths == nil {
				paths = []string{}
			}
			return writeJSON(w, paths)
		}
		if len(paths) == 0 {
			fmt.Fprintln(w, "No deck files found")
			return nil
		}
		for _, p := range paths {
			fmt.Fprintln(w, p)
		}
		return nil
	},
}

// outlineEntry is one slide in `deck outline --json`.
type outlineEntry struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Fragment  string `json:"fragment"`
	Countdown bool   `json:"countdown,omitempty"`
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var outlineCmd = &cobra.Command{
	Use:   "outline [DECK_FILE]",
	Short: "Print the slide titles of a deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		reg, _, err := resolveDeck(cfg, args)
		if err != nil {
			return err
		}
		entries := make([]outlineEntry, 0, reg.Count())
		for i := range reg.Count() {
			entries = append(entries, outlineEntry{
				Index:     i,
				Title:     reg.TitleOf(i),
				Fragment:  "#" + location.Format(i),
				Countdown: reg.HasAuxiliaryBehavior(i),
			})
		}
		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, entries)
		}
		printOutline(w, reg.Title(), entries, isTerminal(w))
		return nil
	},
}

func printOutline(w io.Writer, title string, entries []outlineEntry, styled bool) {
	head := lipgloss.NewStyle()
	num := lipgloss.NewStyle()
	mark := lipgloss.NewStyle()
	if styled {
		head = head.Bold(true).Foreground(lipgloss.Color("69"))
		num = num.Foreground(lipgloss.Color("241"))
		mark = mark.Foreground(lipgloss.Color("#2dd4bf"))
	}
	if title != "" {
		fmt.Fprintln(w, head.Render(title))
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", num.Render(fmt.Sprintf("%2d", e.Index+1)), e.Title)
		if e.Countdown {
			line += "  " + mark.Render("[countdown]")
		}
		fmt.Fprintln(w, line)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the persisted color theme",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Load(openStore(cfg)).Current())
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the dark and light theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme.Load(openStore(cfg)).Toggle())
		return nil
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var themeSetCmd = &cobra.Command{
	Use:   "set [light|dark]",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate.Var(args[0], "oneof=light dark"); err != nil {
			return fmt.Errorf("invalid theme %q: expected light or dark", args[0])
		}
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		pref := theme.Load(openStore(cfg))
		pref.Set(theme.Parse(args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", pref.Current())
		return nil
	},
}

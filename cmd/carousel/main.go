// Package main provides the CLI entrypoint for carousel.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/carousel/internal/catalog"
	"github.com/verte-zerg/carousel/internal/config"
	"github.com/verte-zerg/carousel/internal/logging"
	"github.com/verte-zerg/carousel/internal/model"
	"github.com/verte-zerg/carousel/internal/pagestate"
	"github.com/verte-zerg/carousel/internal/plain"
	"github.com/verte-zerg/carousel/internal/stats"
	"github.com/verte-zerg/carousel/internal/store"
	"github.com/verte-zerg/carousel/internal/tui"
)

const (
	defaultLogLevel   = "info"
	defaultPlainWidth = 48
)

var (
	flagCatalog    string
	flagTop        int
	flagCapitalize bool
	flagLogFile    string
	flagLogLevel   string

	showPage  int
	showQuery string
	showStats bool

	statsPage int

	exportOut string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "carousel",
		Short:         "Browse a paged catalog with search and character statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runScreenCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagCatalog, "catalog", "", "catalog file (.toml, .yaml, .db) or directory of .txt pages")
	flags.IntVar(&flagTop, "top", stats.DefaultTop, "number of characters in statistics")
	flags.BoolVar(&flagCapitalize, "capitalize", true, "capitalize items for display")
	flags.StringVar(&flagLogFile, "log-file", "", "write debug logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newPagesCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// runtime is everything a command needs after config resolution.
type runtime struct {
	cfg     model.Config
	catalog catalog.Catalog
	logger  *slog.Logger
	closer  io.Closer
}

func (rt *runtime) Close() {
	if err := rt.closer.Close(); err != nil {
		logErrf("failed to close log: %v\n", err)
	}
}

func (rt *runtime) newState() (*pagestate.State, error) {
	return pagestate.New(rt.catalog, pagestate.WithLogger(rt.logger))
}

func setup(cmd *cobra.Command) (*runtime, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "catalog", &flagCatalog, fileCfg.Catalog.Path)
	applyIntConfig(cmd, "top", &flagTop, fileCfg.UI.Top)
	applyBoolConfig(cmd, "capitalize", &flagCapitalize, fileCfg.UI.Capitalize)
	applyStringConfig(cmd, "log-file", &flagLogFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &flagLogLevel, fileCfg.Log.Level)

	cfg := model.Config{
		CatalogPath: flagCatalog,
		Top:         flagTop,
		Capitalize:  flagCapitalize,
		LogFile:     flagLogFile,
		LogLevel:    flagLogLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cat, source, err := loadCatalog(cmd.Context(), cfg.CatalogPath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	logger.Info("catalog loaded", "source", source, "pages", cat.Len())
	return &runtime{cfg: cfg, catalog: cat, logger: logger, closer: closer}, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Top < 1 {
		return fmt.Errorf("--top must be >= 1")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

// loadCatalog resolves the catalog source. Without a configured path the default
// catalog file is used when present, otherwise the built-in catalog.
func loadCatalog(ctx context.Context, path string) (catalog.Catalog, string, error) {
	if path == "" {
		path = config.DefaultCatalogPath()
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return catalog.Default(), "built-in", nil
			}
			return catalog.Catalog{}, "", fmt.Errorf("failed to stat catalog: %w", err)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		cat, err := loadStoredCatalog(ctx, path)
		return cat, path, err
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return catalog.Catalog{}, "", err
	}
	return cat, path, nil
}

func loadStoredCatalog(ctx context.Context, path string) (catalog.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to stat catalog db: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	cat, err := st.LoadCatalog(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	return cat, nil
}

func runScreenCmd(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	st, err := rt.newState()
	if err != nil {
		return err
	}
	screen := tui.NewModel(st, rt.cfg, rt.logger)
	defer screen.Close()

	program := tea.NewProgram(screen, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one frame of the screen",
		Args:  cobra.NoArgs,
		RunE:  runShowCmd,
	}
	cmd.Flags().IntVar(&showPage, "page", 0, "page index (0-based)")
	cmd.Flags().StringVar(&showQuery, "query", "", "search query")
	cmd.Flags().BoolVar(&showStats, "stats", false, "also print the statistics sheet")
	return cmd
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	st, err := rt.newState()
	if err != nil {
		return err
	}
	if err := st.SetSelectedPage(showPage); err != nil {
		return fmt.Errorf("--page: %w", err)
	}
	st.SetQuery(showQuery)

	out := cmd.OutOrStdout()
	r := plain.NewRenderer(out, outputWidth(out), rt.cfg.Capitalize)
	r.StateChanged(st.Snapshot())
	if showStats {
		r.RenderReport(st.Report(rt.cfg.Top))
	}
	return r.Err()
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Replay a script of screen events, printing each frame",
		Long: `Replay reads one event per line from file (or stdin when omitted or "-"):

  next | prev           swipe to the following or preceding page
  page N                select page N (0-based)
  scroll OFFSET WIDTH   select page floor(OFFSET/WIDTH)
  query TEXT            set the search query (empty clears it)
  tap                   open the statistics sheet
  dismiss               close the statistics sheet`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplayCmd,
	}
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open events: %w", err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				// Best-effort close for read-only script.
				_ = cerr
			}
		}()
		in = file
	}

	st, err := rt.newState()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	r := plain.NewRenderer(out, outputWidth(out), rt.cfg.Capitalize)
	cancel := st.Subscribe(r)
	defer cancel()
	return plain.Replay(in, st, r, rt.cfg.Top)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print character statistics for a page",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsPage, "page", 0, "page index (0-based)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	st, err := rt.newState()
	if err != nil {
		return err
	}
	if err := st.SetSelectedPage(statsPage); err != nil {
		return fmt.Errorf("--page: %w", err)
	}
	out := cmd.OutOrStdout()
	r := plain.NewRenderer(out, outputWidth(out), rt.cfg.Capitalize)
	r.RenderReport(st.Report(rt.cfg.Top))
	return r.Err()
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List catalog pages",
		Args:  cobra.NoArgs,
		RunE:  runPagesCmd,
	}
}

func runPagesCmd(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	nameWidth := 0
	for _, name := range rt.catalog.Names() {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}
	for i, page := range rt.catalog.Pages {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d  %-*s  %d items\n", i, nameWidth, page.Name, len(page.Items)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog sources",
	}
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the current catalog to a SQLite database",
		Args:  cobra.NoArgs,
		RunE:  runCatalogExportCmd,
	}
	export.Flags().StringVar(&exportOut, "out", "", "database path (default: XDG data dir)")
	cmd.AddCommand(export)
	return cmd
}

func runCatalogExportCmd(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := exportOut
	if out == "" {
		out = config.DefaultDBPath()
	}
	st, err := store.Open(out)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.SaveCatalog(cmd.Context(), rt.catalog); err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}
	rt.logger.Info("catalog exported", "path", out, "pages", rt.catalog.Len())
	logErrf("Wrote %d pages to %s\n", rt.catalog.Len(), out)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# carousel configuration
# Uncomment a value to enable it. CLI flags override config values.

[catalog]
# path = %q   # .toml, .yaml, .db, or a directory of .txt pages

[ui]
# top = %d              # Characters shown in statistics
# capitalize = true     # Capitalize items for display

[log]
# file = %q
# level = %q
`,
		config.DefaultCatalogPath(),
		stats.DefaultTop,
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func outputWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultPlainWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultPlainWidth
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"gitscan/internal/config"
	"gitscan/internal/git"
	"gitscan/internal/report"
	"gitscan/internal/scan"
)

var (
	flagDetailed    bool
	flagIncludeRoot bool
	flagFormat      string
	flagPolicy      string
	flagConfig      string
)

// errInterrupted marks the operator-initiated termination path so main can
// print the friendly message instead of an error line.
var errInterrupted = errors.New("operation cancelled by user")

var rootCmd = &cobra.Command{
	Use:   "gitscan [path]",
	Short: "Report the status of every git repository under a directory",
	Long: `gitscan walks the immediate subdirectories of a path, identifies git
working copies, and prints branch, ahead/behind, changed and untracked
counts for each, as an aligned table or a menu-bar listing.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDetailed, "detailed", false, "show every repository, with total commits and remote URL")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "output format: table or menubar")
	rootCmd.Flags().StringVar(&flagPolicy, "count-policy", "", "changed-count policy: all or tracked")
	rootCmd.Flags().BoolVar(&flagIncludeRoot, "include-root", false, "consider the scan root itself a candidate repository")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file path (default: user config dir)")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Operator-facing warnings only, no timestamps.
	log.SetFlags(0)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Probe git before any directory is examined.
	querier, err := git.NewCLIQuerier()
	if err == nil {
		_, err = querier.Version(ctx)
	}
	if err != nil {
		return errors.New("git is not installed or not in PATH, please install Git to use this tool")
	}

	root := cfg.DefaultRoot
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return fmt.Errorf("path %q does not exist", root)
	}
	if err != nil {
		return fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", root)
	}

	inspector := git.NewInspector(querier, git.Options{
		Policy:       resolvePolicy(cfg.Format, cfg.CountPolicy),
		TotalCommits: cfg.Detailed,
	})
	scanner := scan.New(inspector.Inspect, resolveIncludeRoot(cfg.Format, cfg.IncludeRoot))

	result, err := scanner.Scan(ctx, root)
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return errInterrupted
	}
	if err != nil {
		return err
	}

	repos := result.Sorted()
	switch cfg.Format {
	case config.FormatMenubar:
		fmt.Print(report.Menubar(repos))
	default:
		absRoot, err := filepath.Abs(root)
		if err != nil {
			absRoot = root
		}
		report.Write(os.Stdout, absRoot, repos, cfg.Detailed)
	}
	return nil
}

// loadConfig reads the config file and layers any explicitly set flags on
// top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("detailed") {
		cfg.Detailed = flagDetailed
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("count-policy") {
		cfg.CountPolicy = flagPolicy
	}
	if flags.Changed("include-root") {
		cfg.IncludeRoot = &flagIncludeRoot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePolicy maps the configured policy name onto a counting policy,
// keeping each output format's historical default when none is set: the
// menu-bar listing counts every status line as changed, the table report
// counts tracked entries only.
func resolvePolicy(format, policy string) git.CountPolicy {
	switch policy {
	case config.PolicyAllLines:
		return git.CountAllLines
	case config.PolicyTrackedOnly:
		return git.CountTrackedOnly
	}
	if format == config.FormatMenubar {
		return git.CountAllLines
	}
	return git.CountTrackedOnly
}

// resolveIncludeRoot decides whether the scan root is itself a candidate,
// keeping each output format's historical default when nothing explicit is
// configured: the standalone table report scans the root, the menu-bar
// listing skips it.
func resolveIncludeRoot(format string, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return format != config.FormatMenubar
}

// Package cmd wires the ccbar command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ccbar/internal/cache"
	"ccbar/internal/config"
	"ccbar/internal/credentials"
	"ccbar/internal/logger"
	"ccbar/internal/render"
	"ccbar/internal/session"
	"ccbar/internal/styles"
	"ccbar/internal/usage"
)

// version is stamped by the release build.
var version = "0.2.0"

var (
	installFlag bool
	configFlag  bool
	showFlag    string
	hideFlag    string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:          "ccbar",
	Short:        "Configurable status line for Claude Code",
	Version:      version,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("ccbar {{.Version}}\n")
	rootCmd.Flags().BoolVar(&installFlag, "install", false, "register ccbar as the Claude Code status line")
	rootCmd.Flags().BoolVar(&configFlag, "config", false, "print the config file path")
	rootCmd.Flags().StringVar(&showFlag, "show", "", "comma-separated sections to render, replacing the configured list")
	rootCmd.Flags().StringVar(&hideFlag, "hide", "", "comma-separated sections to drop from the configured list")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write diagnostics to the debug log")
}

func Execute() error {
	return rootCmd.Execute()
}

// Seams for tests; the render pipeline itself stays linear.
var (
	lookupCredentials = credentials.Lookup
	fetchUsage        = usage.Fetch
	cachePath         = cache.Path
)

func runRoot(cmd *cobra.Command, args []string) error {
	styles.EnableVirtualTerminal()

	if installFlag {
		return runInstall()
	}
	if configFlag {
		fmt.Println(config.Path())
		return nil
	}

	logger.Init(filepath.Join(cache.Dir(), "ccbar.log"), debugFlag)

	cfg := config.Resolve(config.Path())
	applySectionFlags(&cfg)

	ctx := session.Parse(os.Stdin)

	fmt.Println(statusLine(cfg, ctx))
	return nil
}

// applySectionFlags lets --show replace the section list wholesale, or
// --hide filter it. --show wins when both are given.
func applySectionFlags(cfg *config.Config) {
	if showFlag != "" {
		cfg.Sections = splitList(showFlag)
		return
	}
	if hideFlag == "" {
		return
	}
	hidden := make(map[string]bool)
	for _, name := range splitList(hideFlag) {
		hidden[name] = true
	}
	kept := make([]string, 0, len(cfg.Sections))
	for _, name := range cfg.Sections {
		if !hidden[name] {
			kept = append(kept, name)
		}
	}
	cfg.Sections = kept
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// statusLine runs the cache-gated render pipeline: a fresh cached snapshot
// short-circuits everything remote; otherwise one credential lookup, one
// fetch, one cache write.
func statusLine(cfg config.Config, ctx session.Context) string {
	path := cachePath()
	if entry := cache.Read(path, cfg.CacheTTL); entry != nil && entry.Usage != nil {
		logger.Debug("cache hit, skipping usage fetch")
		return render.Line(render.Input{Usage: entry.Usage, Plan: entry.Plan, Ctx: ctx, Cfg: cfg})
	}

	token, plan := lookupCredentials()
	if token == "" {
		return "No credentials found"
	}

	snap, err := fetchUsage(token)
	if err != nil {
		logger.Error(fmt.Sprintf("usage fetch failed: %v", err))
		// Failed fetches also write a cache entry, with a null snapshot.
		// The hit check above requires non-null usage, so this entry never
		// short-circuits a later run; it only records the failure and plan.
		cache.Write(path, nil, plan)
		var httpErr *usage.HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Sprintf("API error: %d", httpErr.Code)
		}
		return "Usage unavailable"
	}

	line := render.Line(render.Input{Usage: snap, Plan: plan, Ctx: ctx, Cfg: cfg})
	cache.Write(path, snap, plan)
	logger.Debug("usage fetched and cached")
	return line
}

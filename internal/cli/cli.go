package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"locharvest/internal/config"
	"locharvest/internal/extract"
	"locharvest/internal/strfile"
	"locharvest/internal/textutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "locharvest",
		Short: "Harvest localizable strings from source trees into .strings files",
		Long:  "Scans source files for JTL-style localization markers and generates or extends UTF-16 .strings files from the harvested key/comment pairs.",
	}

	rootCmd.PersistentFlags().String("marker", "", "Marker identifier to scan for (overrides LOCHARVEST_MARKER)")
	rootCmd.PersistentFlags().StringSlice("ext", nil, "Source file extensions to scan (overrides LOCHARVEST_EXTENSIONS)")

	rootCmd.AddCommand(harvestCmd())
	rootCmd.AddCommand(appendCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func harvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest <source-dir> <output-file>",
		Short: "Scan a source tree for marker declarations and write a new strings file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarvest(cmd, args[0], args[1])
		},
	}
}

func appendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append <source-dir> <strings-file>",
		Short: "Append newly discovered keys to an existing strings file",
		Long: `Scans the source tree for marker declarations, drops keys the target
strings file already contains, and appends the remainder under a section header.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, _ := cmd.Flags().GetString("section")
			return runAppend(cmd, args[0], args[1], section)
		},
	}

	cmd.Flags().String("section", "New Strings", "Section header for the appended block")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <strings-file>",
		Short: "Parse a strings file and print its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}
}

// loadConfig reads the environment configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	if marker, _ := cmd.Flags().GetString("marker"); marker != "" {
		cfg.Marker = marker
	}
	if exts, _ := cmd.Flags().GetStringSlice("ext"); len(exts) > 0 {
		cfg.Extensions = exts
	}

	return cfg
}

// setupLogging applies the configured level and optional log file.
func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.LogPath).Msg("Cannot open log file, logging to stderr")
			return
		}
		log.Logger = log.Output(f)
	}
}

// runHarvest handles the `harvest` command.
func runHarvest(cmd *cobra.Command, sourceDir, outputPath string) error {
	cfg := loadConfig(cmd)
	setupLogging(cfg)

	log.Info().
		Str("source", sourceDir).
		Str("marker", cfg.Marker).
		Msg("Starting harvest")

	pairs, err := extract.Extract(sourceDir, extract.NewMarkerExtractor(cfg.Marker), extract.ExtensionFilter(cfg.Extensions))
	if err != nil {
		return fmt.Errorf("extract from %s: %w", sourceDir, err)
	}

	if err := strfile.WriteNew(outputPath, pairs); err != nil {
		return fmt.Errorf("write strings file: %w", err)
	}

	log.Info().
		Int("keys", len(pairs)).
		Str("output", outputPath).
		Msg("Harvest complete")

	return nil
}

// runAppend handles the `append` command.
func runAppend(cmd *cobra.Command, sourceDir, stringsPath, section string) error {
	cfg := loadConfig(cmd)
	setupLogging(cfg)

	pairs, err := extract.Extract(sourceDir, extract.NewMarkerExtractor(cfg.Marker), extract.ExtensionFilter(cfg.Extensions))
	if err != nil {
		return fmt.Errorf("extract from %s: %w", sourceDir, err)
	}

	existing := map[string]*strfile.Entry{}
	if _, err := os.Stat(stringsPath); err == nil {
		existing, err = strfile.KeyDictFromFile(stringsPath)
		if err != nil {
			return fmt.Errorf("read existing strings file: %w", err)
		}
	}

	fresh := make(map[string]string)
	for key, comment := range pairs {
		if _, ok := existing[key]; ok {
			continue
		}
		fresh[key] = comment
	}

	if len(fresh) == 0 {
		log.Info().Str("file", stringsPath).Msg("No new keys to append")
		return nil
	}

	if err := strfile.AppendSection(stringsPath, fresh, section); err != nil {
		return fmt.Errorf("append section: %w", err)
	}

	log.Info().
		Int("new_keys", len(fresh)).
		Int("existing", len(existing)).
		Str("file", stringsPath).
		Msg("Append complete")

	return nil
}

// runList handles the `list` command.
func runList(cmd *cobra.Command, stringsPath string) error {
	cfg := loadConfig(cmd)
	setupLogging(cfg)

	records, err := strfile.ParseFile(stringsPath)
	if err != nil {
		return fmt.Errorf("parse strings file: %w", err)
	}

	dict := strfile.BuildByKey(records)
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := dict[k]
		fmt.Printf("%s = %s", k, textutil.Truncate(e.Value, 60))
		if len(e.Comments) > 0 {
			fmt.Printf("  // %s", strings.Join(e.Comments, "; "))
		}
		fmt.Println()
	}

	log.Info().
		Int("entries", len(dict)).
		Int("records", len(records)).
		Str("file", stringsPath).
		Msg("Listed strings file")

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/blobstore"
	"github.com/hupe1980/classmap/catalog"
	"github.com/hupe1980/classmap/resource"
)

var (
	// Global flags
	rootDir     string
	verbose     bool
	jsonOut     bool
	ioLimit     int64
	memoryLimit int64
)

var rootCmd = &cobra.Command{
	Use:   "classmapctl",
	Short: "Inspect and convert class catalogs",
	Long: `classmapctl loads class catalog bundles from a local directory,
compiles their class maps and reports their layout. Bundles are named
<name>.<json|yaml|toml|cbor>[.zst|.lz4].`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Directory holding catalog bundles")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Int64Var(&ioLimit, "io-limit", 0, "Read throughput limit in bytes per second (0 = unlimited)")
	rootCmd.PersistentFlags().Int64Var(&memoryLimit, "memory-limit", 0, "Class map memory limit in bytes (0 = unlimited)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLoader builds a catalog loader over the --root directory.
func newLoader() *catalog.Loader {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   memoryLimit,
		MaxBuilders:        4,
		IOLimitBytesPerSec: ioLimit,
	})
	return catalog.NewLoader(
		blobstore.NewLocalStore(rootDir),
		catalog.WithResourceController(rc),
		catalog.WithLogger(classmap.NewTextLogger(level)),
	)
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

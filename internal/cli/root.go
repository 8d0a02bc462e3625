// Package cli implements the stl-forge CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/stl-forge/internal/catalog"
	"github.com/rcliao/stl-forge/internal/config"
	"github.com/rcliao/stl-forge/internal/forge"
)

var (
	dirFlag     string
	configFlag  string
	verboseFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "stl-forge",
	Short: "Generate printable 3D models as STL files",
	Long:  "Generates watertight STL meshes for basic printable shapes and manages them as a local catalogue. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Data directory (default: $STL_FORGE_DIR or ~/.stl-forge/models)")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: ~/.stl-forge/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log operations to stderr")
}

// getDataDir resolves the data directory: flag, then env, then config file,
// then the default under the home directory.
func getDataDir() string {
	if dirFlag != "" {
		return dirFlag
	}
	if env := os.Getenv("STL_FORGE_DIR"); env != "" {
		return env
	}
	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	if cfg, err := config.Load(path); err == nil && cfg.Dir != "" {
		return cfg.Dir
	}
	return config.DefaultDir()
}

func newLogger() *zap.Logger {
	if !verboseFlag {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openService() (*forge.Service, *catalog.SQLiteCatalog, error) {
	cat, err := catalog.NewSQLiteCatalog(getDataDir())
	if err != nil {
		return nil, nil, err
	}
	return forge.New(cat, newLogger()), cat, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

package cmd

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var cfgFile string
var fileFlags []string
var verbose bool
var version = "dev"

var cfgDir string

var rootCmd = &cobra.Command{
	Use:   "reqfile",
	Short: "Requirements manifest toolkit",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/reqfile); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().StringArrayVarP(&fileFlags, "file", "f", nil, "manifest file to operate on (repeatable; overrides configured manifests)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps and commands")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		cfgDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		if su := os.Getenv("SUDO_USER"); su != "" {
			if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
				dir = filepath.Join(u.HomeDir, ".config")
			}
		}
		cfgDir = filepath.Join(dir, "reqfile")
	}
	entries, _ := os.ReadDir(cfgDir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, e.Name()))
		}
	}
	if _, err := config.LoadFromFiles(files); err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	logging.Init()
	logging.SetVerbose(verbose)
}

// resolveManifests picks the manifest files a command operates on:
// explicit -f flags win, then the configured list, then requirements.txt
// in the working directory.
func resolveManifests() []string {
	if len(fileFlags) > 0 {
		return fileFlags
	}
	if cfg := config.Get(); len(cfg.Manifests) > 0 {
		return cfg.Manifests
	}
	return []string{manifest.DefaultPath()}
}

// resolveOne is for commands that edit a single file.
func resolveOne() string {
	return resolveManifests()[0]
}

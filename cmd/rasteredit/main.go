package main

import (
	"fmt"
	"log"
	"os"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/spf13/cobra"

	"github.com/ironsheep/rasteredit/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "rasteredit",
		Short: "Color-key, recolor, round and resize raster images",
		Long: `rasteredit edits raster images: color-keying to transparency, exact color
substitution, flat tinting, rounded-corner masking and resizing.

Environment variables:
  RASTEREDIT_LOG_LEVEL=debug    Enable debug logging
  RASTEREDIT_JPEG_QUALITY=N     JPEG quality for saved output (1-100)`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Log to stderr; stdout is reserved for MCP traffic in serve mode
			log.SetOutput(os.Stderr)
			log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

			if envFile != "" {
				return config.LoadDotEnv(envFile)
			}
			return config.LoadDotEnv()
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file (default .env if present)")

	rootCmd.AddCommand(newEditCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

// loadConfig reads settings from the environment and logs them in debug mode.
func loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	if cfg.Debug {
		log.Printf("rasteredit %s (built %s, commit %s)", version(), BuildTime, GitCommit)
		log.Printf("JPEG quality: %d", cfg.JPEGQuality)
	}
	return cfg, nil
}

func version() string {
	if Version != "dev" {
		return Version
	}
	return versioninfo.Short()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rasteredit %s\n", version())
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

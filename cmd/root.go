// Package cmd implements the duita CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/advisor"
	"github.com/adiwerna/duita/internal/config"
	"github.com/adiwerna/duita/internal/logging"
	"github.com/adiwerna/duita/internal/store"
)

var (
	flagDataDir string
	flagTone    string
)

var rootCmd = &cobra.Command{
	Use:   "duita",
	Short: "Asisten keuangan pribadi di terminal",
	Long: "Duita memahami kalimat keuangan sehari-hari (\"gaji 3 juta per bulan\"),\n" +
		"menghitung alokasi tabungan, dan belajar dari catatan pengeluaran Anda.",
	RunE: runChat,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override data directory")
	rootCmd.PersistentFlags().StringVar(&flagTone, "tone", "", "Reply tone: formal or santai")
}

// loadConfig reads the config file and layers flag overrides on top.
// A corrupted file falls back to defaults so commands still run.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagTone != "" {
		cfg.Chat.Tone = flagTone
	}
	return cfg
}

// openStore opens the SQLite store under the resolved data directory,
// creating the directory on first run.
func openStore(cfg config.Config) (*store.Store, error) {
	dir := cfg.ResolvedDataDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return store.Open(filepath.Join(dir, "duita.db"))
}

func openLogger(cfg config.Config) *logrus.Logger {
	return logging.Open(cfg.ResolvedDataDir())
}

// modelPath is where the advisor weights live. Kept separate from the
// SQLite store so `duita reset` can wipe records without losing the model.
func modelPath(cfg config.Config) string {
	return filepath.Join(cfg.ResolvedDataDir(), "model.json")
}

func newAdvisor(cfg config.Config, log *logrus.Logger) *advisor.Advisor {
	return advisor.New(advisor.FileStore{Path: modelPath(cfg)}, log)
}

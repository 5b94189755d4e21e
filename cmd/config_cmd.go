package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Tampilkan konfigurasi saat ini",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.ResolvedDataDir())
	fmt.Println()

	fmt.Println("  [Chat]")
	fmt.Printf("    Tone: %s\n", cfg.Chat.Tone)
	fmt.Println()

	fmt.Println("  [Advisor]")
	fmt.Printf("    Auto-train:           %v\n", cfg.Advisor.AutoTrain)
	fmt.Printf("    Confidence threshold: %.2f\n", cfg.Advisor.ConfidenceThreshold)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Notifications]")
	fmt.Printf("    Enabled: %v\n", cfg.Notifications.Enabled)
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:  %s\n", daemonAddr(cfg.Daemon.Addr))
	fmt.Printf("    Schedule: %s\n", daemonCron(cfg.Daemon.ReminderCron))
	fmt.Println()

	fmt.Println("  Jalankan `duita chat` untuk wizard pengaturan awal.")
	return nil
}

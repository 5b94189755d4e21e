package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagResetYes   bool
	flagResetModel bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Hapus semua data tersimpan",
	Long: "Menghapus profil, percakapan, transaksi, daftar keinginan, kosakata,\n" +
		"dan riwayat penghasilan. Model adaptif tetap utuh kecuali --model diberikan.",
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Lewati konfirmasi")
	resetCmd.Flags().BoolVar(&flagResetModel, "model", false, "Hapus juga bobot model adaptif")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	if !flagResetYes {
		fmt.Print("  Hapus semua data duita? Ketik 'ya' untuk melanjutkan: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "ya" {
			fmt.Println("  Dibatalkan.")
			return nil
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	fmt.Println("  Semua catatan dihapus.")

	if flagResetModel {
		if err := os.Remove(modelPath(cfg)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove model weights: %w", err)
		}
		fmt.Println("  Bobot model juga dihapus.")
	}
	return nil
}

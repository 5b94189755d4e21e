package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
)

var (
	flagHistoryLimit    int
	flagHistorySpending bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Riwayat percakapan dan pengeluaran",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "Jumlah pesan terakhir yang ditampilkan")
	historyCmd.Flags().BoolVar(&flagHistorySpending, "spending", false, "Tampilkan grafik pengeluaran 14 hari")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	if flagHistorySpending {
		currency := "IDR"
		if p := st.LoadProfile(); p != nil {
			currency = p.Currency
		}
		days, err := st.SpendingHistory(14)
		if err != nil {
			return fmt.Errorf("load spending history: %w", err)
		}
		fmt.Println()
		fmt.Println(cli.RenderSpendingChart(days, currency))
		fmt.Println()
		return nil
	}

	turns, err := st.Conversation()
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	if len(turns) == 0 {
		fmt.Println("\n  Belum ada percakapan. Mulai dengan `duita chat`.")
		return nil
	}

	if flagHistoryLimit > 0 && len(turns) > flagHistoryLimit {
		turns = turns[len(turns)-flagHistoryLimit:]
	}

	fmt.Println()
	for _, turn := range turns {
		who := "duita"
		if turn.Sender == model.SenderUser {
			who = "anda"
		}
		fmt.Printf("  %s  %-5s  %s\n",
			turn.Timestamp.Local().Format("02 Jan 15:04"), who, turn.Text)
	}
	fmt.Println()
	return nil
}

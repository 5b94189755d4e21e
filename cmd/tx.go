package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/parse"
)

var flagTxCategory string

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Catat dan lihat transaksi",
	RunE:  runTxList,
}

var txAddCmd = &cobra.Command{
	Use:   "add <jumlah> [deskripsi...]",
	Short: "Catat pengeluaran baru",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTxAdd,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "Daftar transaksi tercatat",
	RunE:  runTxList,
}

func init() {
	txAddCmd.Flags().StringVarP(&flagTxCategory, "category", "c", string(model.Essentials),
		"Kategori: essentials, savings, atau wants")

	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txListCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := openLogger(cfg)

	category := model.Category(strings.ToLower(flagTxCategory))
	if !category.Valid() {
		return fmt.Errorf("kategori tidak dikenal: %q", flagTxCategory)
	}

	// The amount goes through the same tolerant parser as chat input,
	// so "50 ribu" works as well as "50000".
	amount := parse.Parse(args[0])
	if !amount.Found || amount.Value <= 0 {
		return fmt.Errorf("jumlah tidak terbaca: %q", args[0])
	}

	description := strings.Join(args[1:], " ")
	if description == "" {
		description = string(category)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	saved, err := st.AddTransaction(model.Transaction{
		Description: description,
		Amount:      amount.Value,
		Category:    category,
	})
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}

	fmt.Printf("  Tercatat: %s (%s) - %s\n",
		cli.FormatMoney(saved.Amount, amount.Currency), categoryLabel(category), description)

	// Every new record is a training signal for the advisor.
	if cfg.Advisor.AutoTrain {
		tx, err := st.Transactions()
		if err != nil {
			log.WithError(err).Warn("skipping training, could not load transactions")
			return nil
		}
		incomes, err := st.RecentIncomes()
		if err != nil {
			log.WithError(err).Warn("skipping training, could not load income samples")
			return nil
		}
		newAdvisor(cfg, log).Train(tx, incomes)
	}
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	tx, err := st.Transactions()
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if len(tx) == 0 {
		fmt.Println("\n  Belum ada transaksi. Catat dengan `duita tx add`.")
		return nil
	}

	currency := "IDR"
	if p := st.LoadProfile(); p != nil {
		currency = p.Currency
	}

	rows := make([][]string, 0, len(tx))
	for _, t := range tx {
		rows = append(rows, []string{
			t.Timestamp.Local().Format("02 Jan 15:04"),
			categoryLabel(t.Category),
			truncate(t.Description, 24),
			cli.FormatMoney(t.Amount, currency),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("TRANSAKSI  (%d tercatat)", len(tx)),
		Headers: []string{"Waktu", "Kategori", "Deskripsi", "Jumlah"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

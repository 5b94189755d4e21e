package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/parse"
	"github.com/adiwerna/duita/internal/plan"
)

var (
	flagAdviseIncome string
	flagAdvisePeriod string
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Rekomendasi alokasi dari model adaptif",
	RunE:  runAdvise,
}

func init() {
	adviseCmd.Flags().StringVar(&flagAdviseIncome, "income", "", "Hitung dengan penghasilan lain (angka atau teks)")
	adviseCmd.Flags().StringVar(&flagAdvisePeriod, "period", "", "Hitung dengan periode lain: hari, bulan, atau tahun")
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := openLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	profile := st.LoadProfile()
	if profile == nil {
		fmt.Println("\n  Belum ada profil. Jalankan `duita chat` dulu untuk mengisinya.")
		return nil
	}

	// What-if overrides: recompute with a different income or period
	// without touching the stored profile.
	if flagAdviseIncome != "" {
		amt := parse.Parse(flagAdviseIncome)
		if !amt.Found || amt.Value <= 0 {
			return fmt.Errorf("penghasilan tidak terbaca: %q", flagAdviseIncome)
		}
		profile.Income = amt.Value
	}
	if flagAdvisePeriod != "" {
		period, err := parsePeriod(flagAdvisePeriod)
		if err != nil {
			return err
		}
		profile.Period = period
	}

	tx, err := st.Transactions()
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	incomes, err := st.RecentIncomes()
	if err != nil {
		return fmt.Errorf("load income samples: %w", err)
	}

	pred := newAdvisor(cfg, log).Predict(profile.Income, tx, incomes)

	fmt.Println()
	fmt.Println(cli.RenderTitle("REKOMENDASI ALOKASI"))
	fmt.Println()
	fmt.Println(cli.RenderRatioChart(pred.Ratios, 40))
	fmt.Println()

	for i, cat := range model.Categories {
		amount := profile.Income * pred.Ratios[i]
		fmt.Printf("  %-12s %s per %s\n", categoryLabel(cat),
			cli.FormatMoney(amount, profile.Currency), periodWord(profile.Period))
	}
	fmt.Println()

	fmt.Printf("  Keyakinan model: %s\n", cli.FormatPercent(pred.Confidence))
	if pred.Confidence < cfg.Advisor.ConfidenceThreshold {
		fmt.Println("  Data masih sedikit, rekomendasi condong ke pembagian standar.")
	}
	fmt.Println()

	proj := plan.Project(*profile)
	fmt.Printf("  Target menabung harian: %s\n",
		cli.FormatMoney(float64(proj.SavePerDay), profile.Currency))

	days, err := st.SpendingHistory(14)
	if err == nil && hasSpending(days) {
		fmt.Println()
		fmt.Println(cli.RenderSpendingChart(days, profile.Currency))
	}
	fmt.Println()
	return nil
}

func categoryLabel(c model.Category) string {
	switch c {
	case model.Essentials:
		return "Kebutuhan"
	case model.Savings:
		return "Tabungan"
	case model.Wants:
		return "Keinginan"
	}
	return string(c)
}

func parsePeriod(s string) (model.Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hari", "harian", "day":
		return model.PerDay, nil
	case "bulan", "bulanan", "month":
		return model.PerMonth, nil
	case "tahun", "tahunan", "year":
		return model.PerYear, nil
	}
	return "", fmt.Errorf("periode tidak dikenal: %q", s)
}

func periodWord(p model.Period) string {
	switch p {
	case model.PerDay:
		return "hari"
	case model.PerYear:
		return "tahun"
	}
	return "bulan"
}

func hasSpending(days []model.DaySpend) bool {
	for _, d := range days {
		if d.Total > 0 {
			return true
		}
	}
	return false
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/parse"
	"github.com/adiwerna/duita/internal/plan"
	"github.com/adiwerna/duita/internal/store"
)

var wishCmd = &cobra.Command{
	Use:   "wish",
	Short: "Daftar keinginan dan perkiraan waktunya",
	RunE:  runWishList,
}

var wishAddCmd = &cobra.Command{
	Use:   "add <nama> <harga>",
	Short: "Tambah keinginan baru",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWishAdd,
}

var wishListCmd = &cobra.Command{
	Use:   "list",
	Short: "Daftar keinginan tersimpan",
	RunE:  runWishList,
}

var wishCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Bandingkan harga keinginan dengan tabungan saat ini",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishCheck,
}

var wishRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Hapus keinginan",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishRm,
}

func init() {
	wishCmd.AddCommand(wishAddCmd)
	wishCmd.AddCommand(wishListCmd)
	wishCmd.AddCommand(wishCheckCmd)
	wishCmd.AddCommand(wishRmCmd)
	rootCmd.AddCommand(wishCmd)
}

func runWishAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Last argument is the price, everything before it the name, so
	// multi-word names work without quoting.
	price := parse.Parse(args[len(args)-1])
	if !price.Found || price.Value <= 0 {
		return fmt.Errorf("harga tidak terbaca: %q", args[len(args)-1])
	}
	name := strings.Join(args[:len(args)-1], " ")

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	saved, err := st.AddWish(model.WishItem{Name: name, Price: price.Value})
	if err != nil {
		return fmt.Errorf("save wish: %w", err)
	}

	fmt.Printf("  Ditambahkan: %s - %s\n", saved.Name, cli.FormatMoney(saved.Price, price.Currency))
	return nil
}

func runWishList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	wishes, err := st.Wishlist()
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}
	if len(wishes) == 0 {
		fmt.Println("\n  Daftar keinginan kosong. Tambah dengan `duita wish add`.")
		return nil
	}

	profile := st.LoadProfile()
	currency := "IDR"
	if profile != nil {
		currency = profile.Currency
	}

	rows := make([][]string, 0, len(wishes))
	for _, w := range wishes {
		rows = append(rows, []string{
			shortID(w.ID),
			truncate(w.Name, 22),
			cli.FormatMoney(w.Price, currency),
			wishEstimate(profile, w.Price),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "DAFTAR KEINGINAN",
		Headers: []string{"ID", "Nama", "Harga", "Perkiraan"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runWishCheck(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	wish, err := findWish(st, args[0])
	if err != nil {
		return err
	}

	profile := st.LoadProfile()
	currency := "IDR"
	savings := 0.0
	if profile != nil {
		currency = profile.Currency
		savings = profile.SavingsNow
	}

	fmt.Printf("  %s - %s\n", wish.Name, cli.FormatMoney(wish.Price, currency))
	fmt.Printf("  Tabungan saat ini: %s\n", cli.FormatMoney(savings, currency))

	if savings >= wish.Price {
		fmt.Println("  Sudah terjangkau!")
		return nil
	}

	shortfall := wish.Price - savings
	fmt.Printf("  Kurang: %s", cli.FormatMoney(shortfall, currency))
	if est := wishEstimate(profile, wish.Price); est != "-" {
		fmt.Printf(" (%s)", est)
	}
	fmt.Println()
	return nil
}

func runWishRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	wish, err := findWish(st, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteWish(wish.ID); err != nil {
		return fmt.Errorf("delete wish: %w", err)
	}
	fmt.Printf("  Dihapus: %s\n", wish.Name)
	return nil
}

// findWish resolves a full or shortened wish ID.
func findWish(st *store.Store, id string) (model.WishItem, error) {
	wishes, err := st.Wishlist()
	if err != nil {
		return model.WishItem{}, fmt.Errorf("load wishlist: %w", err)
	}
	for _, w := range wishes {
		if w.ID == id || shortID(w.ID) == id {
			return w, nil
		}
	}
	return model.WishItem{}, fmt.Errorf("keinginan %q tidak ditemukan", id)
}

// wishEstimate reuses the projection engine: the wish price becomes the
// savings target, so the estimate follows the same daily-savings math.
func wishEstimate(p *model.Profile, price float64) string {
	if p == nil {
		return "-"
	}
	if p.SavingsNow >= price {
		return "sudah terjangkau"
	}

	sim := *p
	sim.Target = &price
	proj := plan.Project(sim)
	if proj.Reach == nil {
		return "-"
	}
	switch proj.Reach.Outcome {
	case plan.Reachable:
		if proj.Reach.Months >= 1 {
			return fmt.Sprintf("~%d bulan", proj.Reach.Months)
		}
		return fmt.Sprintf("~%d hari", proj.Reach.Days)
	case plan.Suspect:
		return "hampir terjangkau"
	default:
		return "di luar jangkauan"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

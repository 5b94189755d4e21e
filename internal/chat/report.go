package chat

import (
	"fmt"
	"strings"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/plan"
)

// Prompts and retries, in the assistant's voice.
const (
	msgWelcome = `Halo! Saya asisten keuanganmu. Berapa penghasilan kamu? (ketik angka atau teks, contoh: 5.000 atau lima ribu)`

	msgIncomeRetry = `Maaf, saya belum mengenali jumlahnya. Bisa tulis angka saja atau teks seperti "5 ribu"?`
	msgAskPeriod   = `Baik. Apakah itu penghasilan per hari, per bulan, atau per tahun? (ketik: hari / bulan / tahun)`
	msgPeriodRetry = `Pilih salah satu: hari / bulan / tahun.`
	msgAskSavings  = `Berapa jumlah uang yang sudah ada di tabunganmu sekarang? (ketik angka)`

	msgSavingsRetry = `Tolong masukkan jumlah tabungan saat ini (angka atau teks seperti "200 ribu")`
	msgAskTarget    = `Apakah kamu punya target tabungan tertentu? Jika iya tulis angka, jika tidak ketik "tidak".`
	msgTargetRetry  = `Tolong masukkan angka target yang valid (misal: 500000)`

	msgAskDuration         = `Berapa lama kamu ingin mencapai target tersebut? (contoh: 30 hari atau 2 bulan)`
	msgAskDurationNoTarget = `Oke. Dalam berapa lama (hari/bulan/tahun) kamu ingin mengecek rencana? Jika belum mau, ketik "nanti".`
	msgDurationRetry       = `Mohon sebutkan durasi yang jelas, contoh: "30 hari" atau "2 bulan"`

	msgSimulateRetry = `Saya belum mengenali angka di kalimatmu. Bisa ketik angka atau gunakan format "10.000" atau "sepuluh ribu"?`
	msgFallback      = `Maaf, saya belum mengerti. Coba tulis: "50000" untuk penghasilan atau tanya: "Jika penghasilan per hari ku 10000 maka butuh berapa?"`
)

func periodLabel(p model.Period) string {
	switch p {
	case model.PerDay:
		return "per hari"
	case model.PerYear:
		return "per tahun"
	default:
		return "per bulan"
	}
}

// buildReport renders the projection for a profile as one chat message.
func buildReport(p model.Profile, tone string) string {
	proj := plan.Project(p)
	money := func(v int64) string { return cli.FormatMoney(float64(v), p.Currency) }

	greet := "Berikut analisisnya:"
	if tone == "santai" {
		greet = "Cek ini ya:"
	}

	var b strings.Builder
	b.WriteString(greet + "\n")
	fmt.Fprintf(&b, "• Jenis penghasilan: %s\n", periodLabel(p.Period))
	fmt.Fprintf(&b, "• Total penghasilan (%s): %s\n", periodLabel(p.Period), cli.FormatMoney(p.Income, p.Currency))
	b.WriteString("\nRekomendasi alokasi (perkiraan):\n")
	fmt.Fprintf(&b, "• Tabungan: %s (25%% %s)\n", money(proj.SavePerPeriod), periodLabel(p.Period))
	fmt.Fprintf(&b, "• Pengeluaran: %s (67%% %s)\n", money(proj.SpendPerPeriod), periodLabel(p.Period))
	fmt.Fprintf(&b, "• Dana darurat: %s (8%% %s)\n", money(proj.EmergencyPerPeriod), periodLabel(p.Period))

	if proj.Reach != nil {
		b.WriteString("\n")
		b.WriteString(reachabilityLine(*proj.Reach, p))
		b.WriteString("\n")
	}

	b.WriteString("\nCatatan: semua angka adalah estimasi. Saya menyesuaikan saat kamu memperbarui progres tabungan.")
	return b.String()
}

func reachabilityLine(r plan.Reachability, p model.Profile) string {
	switch r.Outcome {
	case plan.Infeasible:
		return "Peringatan: tabungan harian yang dihitung adalah 0, target tidak dapat dicapai. Pertimbangkan menaikkan persentase tabungan."
	case plan.Suspect:
		return "Peringatan: target tercapai di bawah 1 hari. Periksa input penghasilan/target."
	case plan.Unrealistic:
		return "Peringatan: estimasi waktu sangat panjang (lebih dari 100 tahun). Target tampak tidak realistis dibandingkan penghasilan."
	default:
		target := ""
		if p.Target != nil {
			target = cli.FormatMoney(*p.Target, p.Currency)
		}
		return fmt.Sprintf("Estimasi waktu mencapai target %s: sekitar %d hari (~%d bulan).", target, r.Days, r.Months)
	}
}

package tui

import (
	"github.com/adiwerna/duita/internal/config"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers before they are
// written to the config file.
type setupValues struct {
	tone   string
	theme  string
	notify bool
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.tone = "formal"
	vals.theme = "flexoki-dark"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gaya bahasa").
				Description("Bagaimana duita menyapa Anda.").
				Options(
					huh.NewOption("Formal", "formal"),
					huh.NewOption("Santai", "santai"),
				).
				Value(&vals.tone),

			huh.NewSelect[string]().
				Title("Tema warna").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&vals.theme),

			huh.NewConfirm().
				Title("Aktifkan pengingat menabung harian?").
				Description("Dikirim oleh `duita daemon` sesuai jadwal.").
				Affirmative("Ya").
				Negative("Tidak").
				Value(&vals.notify),
		),
	)
}

// saveSetupConfig merges the wizard answers into the persisted config.
// The notification question is only ever asked once.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	cfg.Chat.Tone = a.setupVals.tone
	cfg.Appearance.Theme = a.setupVals.theme
	cfg.Notifications.Enabled = a.setupVals.notify
	cfg.Notifications.Asked = true

	a.cfg = cfg
	return config.Save(cfg)
}

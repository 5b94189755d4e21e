package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/adiwerna/duita/internal/chat"
	"github.com/adiwerna/duita/internal/parse"
	"github.com/adiwerna/duita/internal/tui"
)

var flagChatFresh bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Percakapan interaktif dengan asisten",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&flagChatFresh, "fresh", false, "Mulai tanpa memuat percakapan sebelumnya")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := openLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	session := chat.NewSession(st, parse.NewVocab(st), cfg.Chat.Tone, log)

	history, err := st.Conversation()
	if err != nil {
		log.WithError(err).Warn("could not restore conversation")
		history = nil
	}
	if flagChatFresh {
		history = nil
	}

	// Force TrueColor profile so all styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(session, history, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}

// Command lakshmi runs the Lakshmi Path wizard in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	wizard "github.com/koscakluka/lakshmi-path/core"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		shutdown, err := setupLogging(cfg.LogFile)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	provider := regions.NewStaticProvider()
	if cfg.ContentFile != "" {
		if err := provider.LoadFile(cfg.ContentFile); err != nil {
			return err
		}
	}
	if err := provider.Validate(); err != nil {
		return err
	}

	engine, closeEngine, err := newSpeechEngine(cfg)
	if err != nil {
		return err
	}
	defer closeEngine()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := newDispatcher()
	app := &app{}
	w := wizard.New(
		wizard.WithSpeechEngine(engine),
		wizard.WithContentProvider(provider),
		wizard.WithDispatcher(dispatcher.Dispatch),
		wizard.WithEventHandler(app.handle),
		wizard.WithResponseDelay(cfg.ChatResponseDelay),
	)
	defer w.Close()
	app.wizard = w

	p := tea.NewProgram(newModel(ctx, app, provider), tea.WithAltScreen())
	go dispatcher.run(ctx, p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	wizard "github.com/koscakluka/lakshmi-path/core"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type model struct {
	ctx      context.Context
	app      *app
	provider regions.Provider

	help    help.Model
	spinner spinner.Model
	width   int
	height  int

	regionCursor int
	form         form
	advice       viewport.Model
	chatLog      viewport.Model
	chatInput    textinput.Model
	err          error
}

func newModel(ctx context.Context, app *app, provider regions.Provider) model {
	chatInput := textinput.New()
	chatInput.CharLimit = 280

	return model{
		ctx:       ctx,
		app:       app,
		provider:  provider,
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:     defaultWidth,
		height:    defaultHeight,
		advice:    viewport.New(defaultWidth, defaultHeight/2),
		chatLog:   viewport.New(defaultWidth, defaultHeight/2),
		chatInput: chatInput,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.advice.Width, m.advice.Height = msg.Width-4, msg.Height/2
		m.chatLog.Width, m.chatLog.Height = msg.Width-4, msg.Height/2
		m.chatInput.Width = msg.Width - 8
	case dispatchMsg:
		msg()
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		switch m.app.wizard.Stage() {
		case wizard.StageSelectRegion:
			m, cmd = m.updateSelectRegion(msg)
		case wizard.StageCollectProfile:
			m, cmd = m.updateCollectProfile(msg)
		case wizard.StageShowAdvice:
			m, cmd = m.updateShowAdvice(msg)
		}
	}

	m.refresh()
	return m, cmd
}

func (m model) updateSelectRegion(msg tea.KeyMsg) (model, tea.Cmd) {
	all := regions.All()
	switch {
	case key.Matches(msg, keys.Up):
		m.regionCursor = (m.regionCursor + len(all) - 1) % len(all)
	case key.Matches(msg, keys.Down):
		m.regionCursor = (m.regionCursor + 1) % len(all)
	case key.Matches(msg, keys.Preview):
		m.err = m.app.wizard.OnRegionPreview(m.ctx, all[m.regionCursor])
	case key.Matches(msg, keys.Select):
		m.err = m.app.wizard.OnRegionSelected(m.ctx, all[m.regionCursor])
		if m.err == nil {
			m.form = newForm(m.app.wizard.Content().Strings)
		}
	}
	return m, nil
}

func (m model) updateCollectProfile(msg tea.KeyMsg) (model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.Submit):
		info, err := m.form.info()
		if err == nil {
			err = m.app.wizard.OnProfileSubmitted(m.ctx, info)
		}
		m.form.err = err
		if err == nil {
			m.advice.GotoTop()
		}
	case key.Matches(msg, keys.Speak):
		m.err = m.app.wizard.OnFieldPromptRequested(m.ctx, m.form.focused().Field)
	case key.Matches(msg, keys.Next):
		m.form, cmd = m.form.move(1)
	case key.Matches(msg, keys.Prev):
		m.form, cmd = m.form.move(-1)
	case msg.String() == "enter":
		m.form, cmd = m.form.move(1)
	default:
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

func (m model) updateShowAdvice(msg tea.KeyMsg) (model, tea.Cmd) {
	w := m.app.wizard
	var cmd tea.Cmd
	if !w.ChatOpen() {
		switch {
		case key.Matches(msg, keys.OpenChat):
			if m.err = w.OnChatOpened(m.ctx); m.err == nil {
				m.chatInput.Placeholder = w.Content().Strings.ChatbotInputPlaceholder
				cmd = m.chatInput.Focus()
			}
		default:
			m.advice, cmd = m.advice.Update(msg)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.CloseChat):
		w.OnChatClosed()
		m.chatInput.Blur()
	case key.Matches(msg, keys.Send):
		m.err = w.OnChatMessageSent(m.ctx, m.chatInput.Value())
		m.chatInput.Reset()
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		m.chatLog, cmd = m.chatLog.Update(msg)
	default:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

// refresh renders the wizard state into the scrolling views.
func (m *model) refresh() {
	w := m.app.wizard
	if w.Stage() != wizard.StageShowAdvice {
		return
	}
	text := w.Content().Strings
	width := max(m.advice.Width, 20)
	m.advice.SetContent(wordwrap.String(text.Advice+"\n\n"+text.ChatbotPrompt, width))

	var b strings.Builder
	for _, message := range w.Conversation() {
		if message.FromUser {
			b.WriteString(userStyle.Render("› "+wordwrap.String(message.Text, width-2)) + "\n")
		} else {
			b.WriteString(botStyle.Render(wordwrap.String(message.Text, width)) + "\n")
		}
	}
	m.chatLog.SetContent(b.String())
	m.chatLog.GotoBottom()
}

func (m model) View() string {
	w := m.app.wizard
	var body string
	var helpKeys bindings
	switch w.Stage() {
	case wizard.StageSelectRegion:
		body = m.viewSelectRegion()
		helpKeys = bindings{keys.Up, keys.Down, keys.Preview, keys.Select, keys.Quit}
	case wizard.StageCollectProfile:
		text := w.Content().Strings
		body = titleStyle.Render(text.StateName+" · "+text.FillDetails) + "\n" + m.form.view()
		helpKeys = bindings{keys.Next, keys.Prev, keys.Toggle, keys.Speak, keys.Submit, keys.Quit}
	case wizard.StageShowAdvice:
		body = m.viewShowAdvice()
		if w.ChatOpen() {
			helpKeys = bindings{keys.Send, keys.CloseChat, keys.Quit}
		} else {
			helpKeys = bindings{keys.OpenChat, keys.Quit}
		}
	}

	sections := []string{body, m.viewStatus(), m.help.View(helpKeys)}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m model) viewSelectRegion() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lakshmi Path") + "\n")
	for i, region := range regions.All() {
		name := region.String()
		if content, err := m.provider.Content(region); err == nil {
			name = fmt.Sprintf("%s (%s)", content.Strings.StateName, region)
		}
		if i == m.regionCursor {
			b.WriteString(cursorStyle.Render("› "+name) + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}

func (m model) viewShowAdvice() string {
	w := m.app.wizard
	text := w.Content().Strings
	if w.ChatOpen() {
		chat := titleStyle.Render(text.ChatbotTitle) + "\n" +
			m.chatLog.View() + "\n" +
			m.chatInput.View() + " " + buttonStyle.Render(text.ChatbotSendButton)
		return panelStyle.Render(chat)
	}

	view := titleStyle.Render(text.StateName) + "\n" + m.advice.View() + "\n\n"
	if w.ChatAvailable() {
		view += buttonStyle.Render(text.ChatbotButton)
	} else {
		view += mutedStyle.Render(text.ChatbotButton)
	}
	return view
}

func (m model) viewStatus() string {
	var lines []string
	if m.app.wizard.IsSpeaking() {
		lines = append(lines, m.spinner.View()+" "+speakingStyle.Render(m.app.speaking))
	}
	if m.app.notice != "" {
		lines = append(lines, mutedStyle.Render(m.app.notice))
	}
	if m.err != nil && !errors.Is(m.err, context.Canceled) {
		lines = append(lines, errorStyle.Render(m.err.Error()))
	}
	return strings.Join(lines, "\n")
}

package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Preview   key.Binding
	Select    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Speak     key.Binding
	Toggle    key.Binding
	Submit    key.Binding
	OpenChat  key.Binding
	Send      key.Binding
	CloseChat key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Preview:   key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "hear name")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Speak:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "hear label")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space/←/→", "change")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	OpenChat:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	Send:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	CloseChat: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close chat")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// bindings adapts a list of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

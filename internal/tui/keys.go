package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	capture key.Binding
	retake  key.Binding
	submit  key.Binding
	zoomIn  key.Binding
	zoomOut key.Binding
	back    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "p")),
	right:   key.NewBinding(key.WithKeys("right", "n")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	capture: key.NewBinding(key.WithKeys(" ", "c")),
	retake:  key.NewBinding(key.WithKeys("r")),
	submit:  key.NewBinding(key.WithKeys("s")),
	zoomIn:  key.NewBinding(key.WithKeys("+", "=")),
	zoomOut: key.NewBinding(key.WithKeys("-")),
	back:    key.NewBinding(key.WithKeys("esc")),
}

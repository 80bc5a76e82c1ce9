package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	toggle  key.Binding
	edit    key.Binding
	reset   key.Binding
	reload  key.Binding
	filter  key.Binding
	copy    key.Binding
	export  key.Binding
	file    key.Binding
	unlock  key.Binding
	parse   key.Binding
	left    key.Binding
	right   key.Binding
	create  key.Binding
	remove  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	edit:    key.NewBinding(key.WithKeys("e")),
	reset:   key.NewBinding(key.WithKeys("r")),
	reload:  key.NewBinding(key.WithKeys("ctrl+r")),
	filter:  key.NewBinding(key.WithKeys("/")),
	copy:    key.NewBinding(key.WithKeys("c")),
	export:  key.NewBinding(key.WithKeys("x")),
	file:    key.NewBinding(key.WithKeys("ctrl+o")),
	unlock:  key.NewBinding(key.WithKeys("ctrl+u")),
	parse:   key.NewBinding(key.WithKeys("ctrl+s")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	create:  key.NewBinding(key.WithKeys("n")),
	remove:  key.NewBinding(key.WithKeys("d")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}

package report

import "github.com/charmbracelet/glamour"

// Terminal renders the markdown report styled for a terminal of the given
// width, picking a dark or light theme from the terminal background.
func Terminal(r *Results, width int) (string, error) {
	md, err := Markdown(r)
	if err != nil {
		return "", err
	}
	if width <= 0 {
		width = 80
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(string(md))
}

// Package prompt renders the shell prompt.
package prompt

const (
	Esc        string = "\033"
	CSI        string = Esc + "["
	BrightBlue string = CSI + "34;1m"
	Reset      string = CSI + "0m"
)

// Renderer formats the working directory into a prompt.
type Renderer struct {
	Color bool
}

// Render returns "[cwd]$ " with cwd in bright blue when color is on.
func (r Renderer) Render(cwd string) string {
	if !r.Color {
		return "[" + cwd + "]$ "
	}
	return "[" + BrightBlue + cwd + Reset + "]$ "
}

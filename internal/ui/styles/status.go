package styles

import "strings"

// Status symbols
const (
	CheckMark = "✔"
	CrossMark = "✖"
	Bullet    = "•"
)

// Intro renders the title line printed when a command starts.
func Intro(title string) string {
	return PrimaryStyle.Render("┌ ") + Bold.Render(title)
}

// Done renders a success line: a green check mark followed by msg.
func Done(msg string) string {
	return SuccessStyle.Render(CheckMark) + " " + msg
}

// Failed renders an error line: a red cross followed by msg.
func Failed(msg string) string {
	return ErrorStyle.Render(CrossMark) + " " + msg
}

// Note renders an informational line for no-op outcomes.
func Note(msg string) string {
	return WarningStyle.Render(Bullet) + " " + msg
}

// FileList renders files as an indented, muted bullet list.
func FileList(files []string) string {
	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(MutedStyle.Render("  " + Bullet + " " + f))
	}
	return b.String()
}

// Message renders a generated commit message inside a rounded box.
func Message(msg string) string {
	return MessageBox.Render(msg)
}

package ui

import "github.com/charmbracelet/lipgloss"

// notice is a blocking notification: while its text is set, the owning
// screen swallows every key except the dismiss keys, so the user must
// acknowledge it before interacting again.
type notice struct {
	text string
}

func (n *notice) show(text string) { n.text = text }
func (n *notice) dismiss()         { n.text = "" }
func (n *notice) active() bool     { return n.text != "" }

// handleKey consumes a key while the notice is active. Returns true when the
// key was swallowed by the overlay.
func (n *notice) handleKey(key string) bool {
	if !n.active() {
		return false
	}
	if key == "enter" || key == "esc" {
		n.dismiss()
	}
	return true
}

func (n *notice) render(width int) string {
	box := noticeStyle.Render(n.text + "\n\n" + dimStyle.Render("press enter to dismiss"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// confirm is a blocking yes/no prompt. The pending action is identified by
// the owning screen; the overlay only records the question and the answer.
type confirm struct {
	question string
	pending  bool
}

func (c *confirm) ask(question string) {
	c.question = question
	c.pending = true
}

func (c *confirm) cancel() {
	c.question = ""
	c.pending = false
}

func (c *confirm) active() bool { return c.pending }

// handleKey consumes a key while the prompt is active. It returns
// (swallowed, accepted): accepted is true only for an explicit "y".
func (c *confirm) handleKey(key string) (bool, bool) {
	if !c.pending {
		return false, false
	}
	switch key {
	case "y", "Y":
		c.cancel()
		return true, true
	case "n", "N", "esc":
		c.cancel()
		return true, false
	}
	return true, false
}

func (c *confirm) render(width int) string {
	box := confirmStyle.Render(c.question + "\n\n" + dimStyle.Render("y confirm   n cancel"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

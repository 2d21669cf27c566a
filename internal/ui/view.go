package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/kaboom/internal/protocol"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle("💣 Kaboom!"))
	b.WriteString("\n\n")

	if m.phase == phaseName {
		b.WriteString("Enter your name and press Enter to find a game.\n\n")
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.viewTable())
	}

	if len(m.lines) > 0 {
		b.WriteString("\n\n")
		b.WriteString(logStyle.Render(strings.Join(m.lines, "\n")))
	}
	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("⚠ " + m.errText))
	}

	return docStyle.Render(b.String())
}

// viewTable renders the room state from this player's perspective.
func (m *Model) viewTable() string {
	if m.state == nil {
		return "Waiting for an opponent..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Room %s — %s | deck: %d, discard: %d\n",
		m.state.RoomID, m.state.Status, m.state.DeckCount, m.state.DiscardCount)

	if m.state.DrawnCard != nil {
		fmt.Fprintf(&b, "Drawn card: %s\n", cardStyle.Render(m.state.DrawnCard.DisplayName))
	}
	b.WriteString("\n")

	for _, p := range m.state.Players {
		title := p.Name
		if p.ID == m.playerID {
			title += " (you)"
		}
		if p.IsCurrentPlayer {
			title = activeStyle.Render("▶ " + title)
		}

		cards := make([]string, 0, len(p.Hand))
		for _, c := range p.Hand {
			cards = append(cards, renderCard(c))
		}

		hand := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		b.WriteString(boxStyle.Render(title + "\n" + hand))
		b.WriteString("\n")
	}

	b.WriteString("\n[d] draw  [1-4] replace  [x] discard drawn  [q] quit")
	return b.String()
}

func renderCard(c protocol.CardInfo) string {
	if c.DisplayName == "??" {
		return hiddenStyle.Render("??")
	}
	return cardStyle.Render(c.DisplayName)
}

package console

import (
	"fmt"
	"strings"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
	"github.com/fadedpez/tucoblackjack/pkg/services/blackjack"
	"github.com/fadedpez/tucoblackjack/pkg/services/statistics"
)

// HiddenCard is shown in place of a face-down card
const HiddenCard = "??"

func (s *Session) renderCard(view blackjack.CardView) string {
	if !view.FaceUp {
		return s.styles.Hidden.Render(HiddenCard)
	}
	if view.Card.IsRed() {
		return s.styles.CardRed.Render(view.Card.String())
	}
	return s.styles.CardBlack.Render(view.Card.String())
}

func (s *Session) renderHand(label string, cards []blackjack.CardView, total int, showTotal bool) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = s.renderCard(card)
	}

	line := s.styles.Label.Render(label+":") + " " + strings.Join(parts, " ")
	if showTotal && len(cards) > 0 {
		line += fmt.Sprintf("  (%d)", total)
	}
	return line
}

// renderTable draws the table snapshot
func (s *Session) renderTable(view blackjack.TableView) string {
	var b strings.Builder

	b.WriteString(s.renderHand("Dealer", view.DealerCards, view.DealerTotal, view.ShowDealerTotal))
	b.WriteString("\n")
	b.WriteString(s.renderHand("Player", view.PlayerCards, view.PlayerTotal, true))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Balance: %s  Bet: %s",
		s.styles.Money.Render(fmt.Sprintf("$%d", view.Balance)),
		s.styles.Money.Render(fmt.Sprintf("$%d", view.Bet))))
	b.WriteString("\n")
	b.WriteString(s.styles.Info.Render(fmt.Sprintf("Cards remaining: %d  Difficulty: %s", view.CardsRemaining, view.Difficulty)))

	out := s.styles.Table.Render(b.String())

	switch view.State {
	case entities.StateRoundOver:
		out += "\n" + s.renderResult(view)
		out += "\n" + s.styles.Info.Render("Type 'new' for the next round.")
	case entities.StateGameOver:
		out += "\n" + s.styles.Loss.Render(view.Message)
		out += "\n" + s.styles.Info.Render("Type 'restart' to play again.")
	case entities.StateBetting:
		out += "\n" + s.styles.Info.Render(fmt.Sprintf("Place your bet ($%d-$%d): bet <amount>", view.MinBet, view.MaxBet))
	case entities.StatePlaying:
		out += "\n" + s.styles.Info.Render("hit or stand?")
	}

	return out
}

func (s *Session) renderResult(view blackjack.TableView) string {
	switch {
	case view.Result.IsWin():
		return s.styles.Win.Render(fmt.Sprintf("%s  +$%d", view.Message, view.WinAmount))
	case view.Result.IsLoss():
		return s.styles.Loss.Render(fmt.Sprintf("%s  -$%d", view.Message, view.Bet))
	default:
		return s.styles.Label.Render(view.Message)
	}
}

func (s *Session) renderSummary(summary *statistics.Summary, shares []*statistics.ResultShare) string {
	var b strings.Builder

	b.WriteString(s.styles.Header.Render("STATISTICS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Games: %d\n", summary.TotalGames))
	b.WriteString(s.styles.Win.Render(fmt.Sprintf("Wins: %d", summary.Wins)) + "\n")
	b.WriteString(s.styles.Loss.Render(fmt.Sprintf("Losses: %d", summary.Losses)) + "\n")
	b.WriteString(fmt.Sprintf("Pushes: %d\n", summary.Pushes))
	b.WriteString(s.styles.Money.Render(fmt.Sprintf("Blackjacks: %d", summary.Blackjacks)) + "\n")
	b.WriteString(fmt.Sprintf("Highest Balance: $%d", summary.HighestBalance))
	if summary.TotalGames > 0 {
		b.WriteString(fmt.Sprintf("\nWin Rate: %.1f%%", summary.WinRate))
	}

	if len(shares) > 0 {
		b.WriteString("\n" + s.styles.Label.Render("History:"))
		for _, share := range shares {
			b.WriteString(fmt.Sprintf("\n  %-9s %4d  %5.1f%%", share.Result, share.Count, share.Percent))
		}
	}

	return b.String()
}

func (s *Session) renderHistory(rounds []*entities.RoundRecord) string {
	if len(rounds) == 0 {
		return s.styles.Info.Render("No rounds recorded yet.")
	}

	var b strings.Builder
	b.WriteString(s.styles.Header.Render("RECENT ROUNDS"))
	for _, round := range rounds {
		b.WriteString(fmt.Sprintf("\n%s  %-9s bet $%-5d won $%-5d balance $%-6d %s vs %s",
			round.CompletedAt.Format("2006-01-02 15:04"),
			round.Result, round.Bet, round.WinAmount, round.BalanceAfter,
			joinCards(round.PlayerCards), joinCards(round.DealerCards)))
	}
	return b.String()
}

func (s *Session) renderDifficulties(presets []*statistics.Difficulty) string {
	var b strings.Builder
	b.WriteString(s.styles.Header.Render("DIFFICULTY"))
	for _, preset := range presets {
		marker := " "
		if preset.Selected {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("\n%s %-7s %d deck(s), starting balance $%d", marker, preset.Name, preset.Decks, preset.StartingBalance))
	}
	return b.String()
}

func joinCards(cards []entities.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

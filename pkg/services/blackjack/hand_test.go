package blackjack

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

type HandTestSuite struct {
	suite.Suite
	hand *Hand
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) SetupTest() {
	s.hand = NewHand()
}

func (s *HandTestSuite) TestTotalRecomputedAfterAdd() {
	s.hand.AddCard(entities.NewCard(entities.Hearts, entities.Ace))
	s.Equal(11, s.hand.Total())

	s.hand.AddCard(entities.NewCard(entities.Spades, entities.Nine))
	s.Equal(20, s.hand.Total())

	s.hand.AddCard(entities.NewCard(entities.Clubs, entities.Five))
	s.Equal(15, s.hand.Total(), "Ace should drop to one after the third card")
	s.False(s.hand.IsBusted())
}

func (s *HandTestSuite) TestBlackjackAndBust() {
	s.hand.AddCard(entities.NewCard(entities.Hearts, entities.Ace))
	s.hand.AddCard(entities.NewCard(entities.Spades, entities.Queen))
	s.True(s.hand.HasBlackjack())

	s.hand.Clear()
	for _, rank := range []entities.Rank{entities.King, entities.Queen, entities.Two} {
		s.hand.AddCard(entities.NewCard(entities.Diamonds, rank))
	}
	s.True(s.hand.IsBusted())
	s.False(s.hand.HasBlackjack())
}

func (s *HandTestSuite) TestVisibility() {
	s.hand.AddCard(entities.NewCard(entities.Hearts, entities.King))
	s.hand.AddCard(entities.NewCard(entities.Spades, entities.Six))
	s.Equal(2, s.hand.FaceUpCount(), "New cards are dealt face up")

	s.hand.SetFaceUp(0, false)

	s.False(s.hand.IsFaceUp(0))
	s.True(s.hand.IsFaceUp(1))
	s.Equal(1, s.hand.FaceUpCount())
	s.Equal(6, s.hand.VisibleTotal())
	s.Equal(16, s.hand.Total(), "Hidden cards still count toward the true total")

	s.False(s.hand.IsFaceUp(5), "Out of range index is never face up")
	s.hand.SetFaceUp(5, true)
}

func (s *HandTestSuite) TestCardsReturnsCopy() {
	s.hand.AddCard(entities.NewCard(entities.Hearts, entities.Two))

	out := s.hand.Cards()
	out[0] = entities.NewCard(entities.Spades, entities.King)

	s.Equal(entities.NewCard(entities.Hearts, entities.Two), s.hand.Cards()[0])
}

func (s *HandTestSuite) TestClear() {
	s.hand.AddCard(entities.NewCard(entities.Hearts, entities.Ten))
	s.Equal(10, s.hand.Total())

	s.hand.Clear()

	s.Zero(s.hand.Len())
	s.Zero(s.hand.Total())
	s.Zero(s.hand.FaceUpCount())
}

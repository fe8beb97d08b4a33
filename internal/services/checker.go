package services

import (
	"lotto/internal/models"

	"github.com/google/logger"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Checker grades tickets against the drawn numbers. It keeps no state, so one
// Checker can grade any number of tickets independently.
type Checker struct{}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// CheckTicket resolves a rank for every line of ticket and sums the prizes.
func (c *Checker) CheckTicket(ticket models.Ticket, winning models.WinningNumbers) models.WinResult {
	tally := make(map[models.LottoRank]int, len(models.Ranks()))
	for _, rank := range models.Ranks() {
		tally[rank] = 0
	}

	for _, line := range ticket.Lines() {
		rank := models.ResolveRank(winning.MatchCount(line), winning.HasBonus(line))
		tally[rank]++
	}

	totalPrize := decimal.Zero
	for rank, count := range tally {
		totalPrize = totalPrize.Add(rank.PrizeDecimal().Mul(decimal.NewFromInt(int64(count))))
	}

	rate := rateOfReturn(totalPrize, ticket.Paid().Amount())
	logger.Infof("Checked ticket %s: lines=%d prize=%s rate=%s%%",
		ticket.ID(), ticket.Size(), totalPrize, rate.StringFixed(1))

	return models.NewWinResult(tally, totalPrize, rate)
}

// rateOfReturn is prize / paid * 100 rounded half up to one decimal place.
// paid includes change that bought no line.
func rateOfReturn(prize, paid decimal.Decimal) decimal.Decimal {
	if paid.IsZero() {
		return decimal.Zero
	}
	return prize.Mul(hundred).DivRound(paid, 1)
}

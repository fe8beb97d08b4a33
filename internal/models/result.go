package models

import "github.com/shopspring/decimal"

// WinResult is the outcome of checking one ticket.
type WinResult struct {
	ranks        map[LottoRank]int
	totalPrize   decimal.Decimal
	rateOfReturn decimal.Decimal
}

// NewWinResult copies tally and fills in the ranks it does not mention.
func NewWinResult(tally map[LottoRank]int, totalPrize, rateOfReturn decimal.Decimal) WinResult {
	ranks := make(map[LottoRank]int, len(rankTable))
	for _, rank := range Ranks() {
		ranks[rank] = tally[rank]
	}
	return WinResult{
		ranks:        ranks,
		totalPrize:   totalPrize,
		rateOfReturn: rateOfReturn,
	}
}

// Count returns how many lines landed on rank.
func (r WinResult) Count(rank LottoRank) int {
	return r.ranks[rank]
}

// Ranks returns a copy of the tally. Every rank is present.
func (r WinResult) Ranks() map[LottoRank]int {
	out := make(map[LottoRank]int, len(r.ranks))
	for rank, count := range r.ranks {
		out[rank] = count
	}
	return out
}

// Total is the number of lines that were checked.
func (r WinResult) Total() int {
	total := 0
	for _, count := range r.ranks {
		total += count
	}
	return total
}

func (r WinResult) TotalPrize() decimal.Decimal { return r.totalPrize }

// RateOfReturn is the prize total over the amount paid, in percent with one
// decimal place.
func (r WinResult) RateOfReturn() decimal.Decimal { return r.rateOfReturn }

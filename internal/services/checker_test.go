package services

import (
	"testing"

	"lotto/internal/models"

	"github.com/shopspring/decimal"
)

func line(t *testing.T, numbers ...int) models.LottoNumbers {
	t.Helper()
	l, err := models.NewLottoNumbers(numbers)
	if err != nil {
		t.Fatalf("NewLottoNumbers(%v) failed: %v", numbers, err)
	}
	return l
}

// paidTicket builds a ticket paid for with exactly the price of its lines.
func paidTicket(t *testing.T, lines ...models.LottoNumbers) models.Ticket {
	t.Helper()
	paid, err := models.NewMoney(decimal.NewFromInt(int64(len(lines) * models.UnitPrice)))
	if err != nil {
		t.Fatalf("NewMoney failed: %v", err)
	}
	return models.NewTicket(lines, 0, paid)
}

func winningNumbers(t *testing.T) models.WinningNumbers {
	t.Helper()
	w, err := models.NewWinningNumbers(line(t, 1, 2, 3, 4, 5, 6), 7)
	if err != nil {
		t.Fatalf("NewWinningNumbers failed: %v", err)
	}
	return w
}

func TestChecker_CheckTicket(t *testing.T) {
	checker := NewChecker()
	winning := winningNumbers(t)

	scenarios := []struct {
		name string
		line models.LottoNumbers
		want models.LottoRank
	}{
		{"Six matches", line(t, 1, 2, 3, 4, 5, 6), models.First},
		{"Five matches and bonus", line(t, 1, 2, 3, 4, 5, 7), models.Second},
		{"Five matches", line(t, 1, 2, 3, 4, 5, 8), models.Third},
		{"Four matches", line(t, 1, 2, 3, 4, 8, 9), models.Fourth},
		{"Three matches", line(t, 1, 2, 3, 8, 9, 10), models.Fifth},
		{"Two matches and bonus", line(t, 1, 2, 7, 8, 9, 10), models.Miss},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			result := checker.CheckTicket(paidTicket(t, sc.line), winning)
			if result.Count(sc.want) != 1 {
				t.Errorf("Expected one %s, but got tally %v", sc.want, result.Ranks())
			}
			if result.Total() != 1 {
				t.Errorf("Expected tally to sum to 1, but got %d", result.Total())
			}
		})
	}

	t.Run("No winning lines", func(t *testing.T) {
		lines := []models.LottoNumbers{
			line(t, 10, 11, 12, 13, 14, 15),
			line(t, 16, 17, 18, 19, 20, 21),
			line(t, 22, 23, 24, 25, 26, 27),
			line(t, 28, 29, 30, 31, 32, 33),
		}
		result := checker.CheckTicket(paidTicket(t, lines...), winning)
		if result.Count(models.Miss) != 4 {
			t.Errorf("Expected 4 misses, but got %d", result.Count(models.Miss))
		}
		if got := result.RateOfReturn().StringFixed(1); got != "0.0" {
			t.Errorf("Expected rate 0.0, but got %s", got)
		}
	})

	t.Run("Empty ticket", func(t *testing.T) {
		result := checker.CheckTicket(paidTicket(t), winning)
		if !result.RateOfReturn().IsZero() || result.Total() != 0 {
			t.Errorf("Expected empty result, but got rate %s total %d", result.RateOfReturn(), result.Total())
		}
		if len(result.Ranks()) != 6 {
			t.Errorf("Expected all ranks present, but got %v", result.Ranks())
		}
	})
}

func TestChecker_RateOfReturn(t *testing.T) {
	checker := NewChecker()
	winning := winningNumbers(t)
	fifth := line(t, 1, 2, 3, 8, 9, 10)
	miss := line(t, 10, 11, 12, 13, 14, 15)

	tests := []struct {
		lines int
		want  string
	}{
		{1, "500.0"},
		{3, "166.7"},
		{6, "83.3"},
		{8, "62.5"},
		{16, "31.3"},
	}
	for _, tc := range tests {
		lines := []models.LottoNumbers{fifth}
		for len(lines) < tc.lines {
			lines = append(lines, miss)
		}
		result := checker.CheckTicket(paidTicket(t, lines...), winning)
		if got := result.RateOfReturn().StringFixed(1); got != tc.want {
			t.Errorf("%d lines: expected rate %s, but got %s", tc.lines, tc.want, got)
		}
		if result.TotalPrize().IntPart() != 5000 {
			t.Errorf("%d lines: expected prize 5000, but got %s", tc.lines, result.TotalPrize())
		}
		if result.Total() != tc.lines {
			t.Errorf("Expected tally to sum to %d, but got %d", tc.lines, result.Total())
		}
	}
}

func TestChecker_Independent(t *testing.T) {
	checker := NewChecker()
	winning := winningNumbers(t)

	first := checker.CheckTicket(paidTicket(t, line(t, 1, 2, 3, 4, 5, 6)), winning)
	second := checker.CheckTicket(paidTicket(t, line(t, 1, 2, 3, 4, 5, 6)), winning)

	if first.Count(models.First) != 1 || second.Count(models.First) != 1 {
		t.Errorf("Results leaked between checks: %v, %v", first.Ranks(), second.Ranks())
	}
}

func TestChecker_RateIncludesChange(t *testing.T) {
	generator := &fixedGenerator{lines: [][]int{{1, 2, 3, 8, 9, 10}, {10, 11, 12, 13, 14, 15}}}
	ticket, err := NewSeller(generator).SellTo(money(t, "5500"))
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if ticket.Size() != 5 {
		t.Fatalf("Expected 5 lines, but got %d", ticket.Size())
	}

	result := NewChecker().CheckTicket(ticket, winningNumbers(t))
	if result.Count(models.Fifth) != 1 {
		t.Fatalf("Expected one FIFTH, but got tally %v", result.Ranks())
	}
	if got := result.RateOfReturn().StringFixed(1); got != "90.9" {
		t.Errorf("Expected rate 90.9 over the 5500 paid, but got %s", got)
	}
}

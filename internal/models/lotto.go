package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Number rules shared by every line and by the bonus number.
const (
	MinNumber = 1
	MaxNumber = 45
	LineSize  = 6
)

// LottoNumbers is one line: six distinct numbers in [MinNumber, MaxNumber],
// kept sorted. The array makes the value immutable by copy.
type LottoNumbers struct {
	numbers [LineSize]int
}

// NewLottoNumbers validates numbers and builds a line.
func NewLottoNumbers(numbers []int) (LottoNumbers, error) {
	if len(numbers) != LineSize {
		return LottoNumbers{}, fmt.Errorf("%w: need exactly %d numbers, got %d", ErrInvalidTicket, LineSize, len(numbers))
	}

	seen := make(map[int]bool, LineSize)
	for _, n := range numbers {
		if !inRange(n) {
			return LottoNumbers{}, fmt.Errorf("%w: number %d out of range [%d, %d]", ErrInvalidTicket, n, MinNumber, MaxNumber)
		}
		if seen[n] {
			return LottoNumbers{}, fmt.Errorf("%w: duplicate number %d", ErrInvalidTicket, n)
		}
		seen[n] = true
	}

	var l LottoNumbers
	copy(l.numbers[:], numbers)
	sort.Ints(l.numbers[:])
	return l, nil
}

func inRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// Numbers returns a sorted copy of the line.
func (l LottoNumbers) Numbers() []int {
	out := make([]int, LineSize)
	copy(out, l.numbers[:])
	return out
}

// Contains reports whether n is part of the line.
func (l LottoNumbers) Contains(n int) bool {
	i := sort.SearchInts(l.numbers[:], n)
	return i < LineSize && l.numbers[i] == n
}

// MatchCount returns the size of the intersection of both lines.
func (l LottoNumbers) MatchCount(other LottoNumbers) int {
	count := 0
	for _, n := range other.numbers {
		if l.Contains(n) {
			count++
		}
	}
	return count
}

func (l LottoNumbers) String() string {
	parts := make([]string, LineSize)
	for i, n := range l.numbers {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WinningNumbers is the drawn line plus a bonus number outside it.
type WinningNumbers struct {
	numbers LottoNumbers
	bonus   int
}

// NewWinningNumbers checks that bonus is in range and not already drawn.
func NewWinningNumbers(numbers LottoNumbers, bonus int) (WinningNumbers, error) {
	if !inRange(bonus) {
		return WinningNumbers{}, fmt.Errorf("%w: bonus %d out of range [%d, %d]", ErrInvalidTicket, bonus, MinNumber, MaxNumber)
	}
	if numbers.Contains(bonus) {
		return WinningNumbers{}, fmt.Errorf("%w: bonus %d is already a winning number", ErrInvalidTicket, bonus)
	}
	return WinningNumbers{numbers: numbers, bonus: bonus}, nil
}

func (w WinningNumbers) Numbers() LottoNumbers { return w.numbers }

func (w WinningNumbers) Bonus() int { return w.bonus }

// MatchCount counts how many of the drawn numbers appear in line.
func (w WinningNumbers) MatchCount(line LottoNumbers) int {
	return w.numbers.MatchCount(line)
}

// HasBonus reports whether line holds the bonus number.
func (w WinningNumbers) HasBonus(line LottoNumbers) bool {
	return line.Contains(w.bonus)
}

// Ticket is every line bought with a single payment.
type Ticket struct {
	id     string
	lines  []LottoNumbers
	manual int
	paid   Money
}

// NewTicket assigns an ID and copies the lines. The first manual lines were
// picked by the customer, the rest were generated. paid is the whole payment,
// change included.
func NewTicket(lines []LottoNumbers, manual int, paid Money) Ticket {
	copied := make([]LottoNumbers, len(lines))
	copy(copied, lines)
	return Ticket{
		id:     uuid.NewString(),
		lines:  copied,
		manual: manual,
		paid:   paid,
	}
}

func (t Ticket) ID() string { return t.id }

// Paid is the amount the customer handed over for the ticket.
func (t Ticket) Paid() Money { return t.paid }

// Lines returns a copy of the ticket lines.
func (t Ticket) Lines() []LottoNumbers {
	out := make([]LottoNumbers, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t Ticket) Size() int { return len(t.lines) }

func (t Ticket) ManualCount() int { return t.manual }

func (t Ticket) AutoCount() int { return len(t.lines) - t.manual }

// Cost is what the lines were paid for, without the unused change.
func (t Ticket) Cost() decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(len(t.lines))))
}

package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"lotto/internal/models"

	"github.com/google/logger"
)

// NumberGenerator supplies the numbers of an automatic line.
type NumberGenerator interface {
	Generate() []int
}

// RandomGenerator draws six distinct numbers from a seeded source.
type RandomGenerator struct {
	rnd *rand.Rand
}

// NewRandomGenerator returns a generator seeded with seed, or with the
// current time when seed is 0.
func NewRandomGenerator(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate samples without replacement from [MinNumber, MaxNumber].
func (g *RandomGenerator) Generate() []int {
	perm := g.rnd.Perm(models.MaxNumber - models.MinNumber + 1)[:models.LineSize]
	numbers := make([]int, models.LineSize)
	for i, p := range perm {
		numbers[i] = p + models.MinNumber
	}
	sort.Ints(numbers)
	return numbers
}

// Seller turns a payment into a ticket.
type Seller struct {
	generator NumberGenerator
}

// NewSeller creates a Seller that fills automatic lines from generator.
func NewSeller(generator NumberGenerator) *Seller {
	return &Seller{generator: generator}
}

// SellTo sells as many lines as payment covers. Manual lines are used first
// and the rest are generated. Change left over is not returned.
func (s *Seller) SellTo(payment models.Money, manual ...[]int) (models.Ticket, error) {
	count := payment.TicketCount()
	if len(manual) > count {
		return models.Ticket{}, fmt.Errorf("%w: %s covers %d lines, %d manual lines requested",
			models.ErrInvalidMoney, payment, count, len(manual))
	}

	lines := make([]models.LottoNumbers, 0, count)
	for _, numbers := range manual {
		line, err := models.NewLottoNumbers(numbers)
		if err != nil {
			return models.Ticket{}, err
		}
		lines = append(lines, line)
	}

	for len(lines) < count {
		line, err := models.NewLottoNumbers(s.generator.Generate())
		if err != nil {
			return models.Ticket{}, fmt.Errorf("generate line: %w", err)
		}
		lines = append(lines, line)
	}

	ticket := models.NewTicket(lines, len(manual), payment)
	logger.Infof("Sold ticket %s: payment=%s lines=%d manual=%d change=%s",
		ticket.ID(), payment, ticket.Size(), ticket.ManualCount(), payment.Remainder())
	return ticket, nil
}

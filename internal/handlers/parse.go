package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"lotto/internal/models"
)

// ParseLottoNumbers reads a comma separated line such as "1,2,3,4,5,6".
func ParseLottoNumbers(s string) (models.LottoNumbers, error) {
	fields := strings.Split(s, ",")
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return models.LottoNumbers{}, fmt.Errorf("%w: %q is not a number", models.ErrInvalidTicket, field)
		}
		numbers = append(numbers, n)
	}
	return models.NewLottoNumbers(numbers)
}

// ParseBonus reads the bonus number and checks it against the drawn line.
func ParseBonus(s string, numbers models.LottoNumbers) (models.WinningNumbers, error) {
	bonus, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return models.WinningNumbers{}, fmt.Errorf("%w: bonus %q is not a number", models.ErrInvalidTicket, s)
	}
	return models.NewWinningNumbers(numbers, bonus)
}

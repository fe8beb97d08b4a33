package models

import "github.com/shopspring/decimal"

// LottoRank is the prize tier of a single line.
type LottoRank int

const (
	Miss LottoRank = iota
	Fifth
	Fourth
	Third
	Second
	First
)

type rankInfo struct {
	matchCount int
	bonus      bool
	prize      int64
	label      string
	name       string
}

var rankTable = [...]rankInfo{
	Miss:   {matchCount: 0, prize: 0, label: "낙첨", name: "MISS"},
	Fifth:  {matchCount: 3, prize: 5_000, label: "3개 일치", name: "FIFTH"},
	Fourth: {matchCount: 4, prize: 50_000, label: "4개 일치", name: "FOURTH"},
	Third:  {matchCount: 5, prize: 1_500_000, label: "5개 일치", name: "THIRD"},
	Second: {matchCount: 5, bonus: true, prize: 30_000_000, label: "5개 일치, 보너스 볼 일치", name: "SECOND"},
	First:  {matchCount: 6, prize: 2_000_000_000, label: "6개 일치", name: "FIRST"},
}

// ResolveRank maps a match count and bonus match to a rank. Only five
// matches look at the bonus.
func ResolveRank(matchCount int, bonusMatched bool) LottoRank {
	switch matchCount {
	case 6:
		return First
	case 5:
		if bonusMatched {
			return Second
		}
		return Third
	case 4:
		return Fourth
	case 3:
		return Fifth
	default:
		return Miss
	}
}

// Ranks lists every rank from First down to Miss.
func Ranks() []LottoRank {
	return []LottoRank{First, Second, Third, Fourth, Fifth, Miss}
}

// ReportRanks lists the winning ranks in the order they are printed.
func ReportRanks() []LottoRank {
	return []LottoRank{Fifth, Fourth, Third, Second, First}
}

func (r LottoRank) info() rankInfo {
	if r < Miss || r > First {
		return rankTable[Miss]
	}
	return rankTable[r]
}

// MatchCount is the number of matches the rank requires.
func (r LottoRank) MatchCount() int { return r.info().matchCount }

// RequiresBonus reports whether the bonus number must match too.
func (r LottoRank) RequiresBonus() bool { return r.info().bonus }

// Prize is the payout of one line with this rank.
func (r LottoRank) Prize() int64 { return r.info().prize }

// PrizeDecimal is Prize as a decimal for money arithmetic.
func (r LottoRank) PrizeDecimal() decimal.Decimal { return decimal.NewFromInt(r.Prize()) }

// Label is the text shown in the result report.
func (r LottoRank) Label() string { return r.info().label }

func (r LottoRank) String() string { return r.info().name }

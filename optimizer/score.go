package optimizer

import "github.com/shopspring/decimal"

// Scoring constants: score = scoreNumerator × W_ft / ((1 + missed) × L_ft).
const (
	scoreNumerator = 150000
	feetPerCell    = 2
)

// ExactScore returns the score of a corridor of half-width width and length
// pathLen steps that crosses missed mine zones. pathLen ≤ 0 scores zero.
func ExactScore(width, pathLen, missed int) decimal.Decimal {
	if pathLen <= 0 {
		return decimal.Zero
	}
	wFeet := decimal.NewFromInt(int64(width * feetPerCell))
	lFeet := decimal.NewFromInt(int64(pathLen * feetPerCell))
	num := decimal.NewFromInt(scoreNumerator).Mul(wFeet)
	den := decimal.NewFromInt(int64(1 + missed)).Mul(lFeet)
	return num.Div(den)
}

// Score is ExactScore as a float64.
func Score(width, pathLen, missed int) float64 {
	f, _ := ExactScore(width, pathLen, missed).Float64()
	return f
}

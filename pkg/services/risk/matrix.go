// Package risk holds the likelihood/consequence matrix, the risk level
// classifier and the score validator used by the compliance analyzer.
package risk

// matrix is the authoritative 5x5 risk matrix. Rows are likelihood 1-5,
// columns are consequence 1-5. The values are hand-authored, monotonic
// non-decreasing along both axes, and are not a plain product of the inputs.
var matrix = [5][5]int{
	{1, 2, 4, 6, 10},
	{2, 4, 7, 11, 15},
	{3, 6, 10, 14, 18},
	{5, 9, 13, 16, 21},
	{7, 12, 17, 22, 25},
}

// MinFactor and MaxFactor bound the likelihood and consequence inputs.
const (
	MinFactor = 1
	MaxFactor = 5
)

// MaxScore is the largest value the matrix can produce.
const MaxScore = 25

// Clamp forces a likelihood or consequence factor into the valid range.
// Out-of-range inputs are silently corrected, not rejected; upstream data is
// user-entered and may be malformed.
func Clamp(factor int) int {
	if factor < MinFactor {
		return MinFactor
	}
	if factor > MaxFactor {
		return MaxFactor
	}
	return factor
}

// ExpectedScore returns the matrix score for a likelihood/consequence pair.
// Inputs are clamped into [MinFactor, MaxFactor] before the lookup.
func ExpectedScore(likelihood, consequence int) int {
	return matrix[Clamp(likelihood)-1][Clamp(consequence)-1]
}

package risk

// Validation reports whether a caller-supplied risk score agrees with the
// matrix. Invalid is a data value, not a failure; Validate never errors.
type Validation struct {
	IsValid       bool
	ExpectedScore int
	ReportedScore int
	Variance      int
}

// Validate clamps the factors, looks up the expected score and compares it to
// the reported one. Variance is the absolute difference.
func Validate(likelihood, consequence, reported int) Validation {
	expected := ExpectedScore(likelihood, consequence)
	variance := expected - reported
	if variance < 0 {
		variance = -variance
	}
	return Validation{
		IsValid:       expected == reported,
		ExpectedScore: expected,
		ReportedScore: reported,
		Variance:      variance,
	}
}

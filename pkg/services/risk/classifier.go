package risk

// Level is the qualitative band a risk score falls into.
type Level string

const (
	// LevelVeryLow is reserved for classifier tables that split the bottom
	// band; the canonical table does not emit it.
	LevelVeryLow Level = "Very Low"
	LevelLow     Level = "Low"
	LevelMedium  Level = "Medium"
	LevelHigh    Level = "High"
	LevelExtreme Level = "Extreme"
)

// Band maps scores up to and including Max onto a level.
type Band struct {
	Max   int
	Level Level
}

// ClassifierTable is an ordered set of threshold bands. Scores above the last
// band classify as Top. The table is an explicit configuration object so call
// sites share one set of thresholds instead of hardcoding their own.
type ClassifierTable struct {
	Bands []Band
	Top   Level
}

// DefaultClassifierTable returns the canonical thresholds: Low <= 4,
// Medium <= 9, High <= 16, Extreme above. The source application carried
// three conflicting tables; this one is the documented choice and can be
// swapped via configuration.
func DefaultClassifierTable() ClassifierTable {
	return ClassifierTable{
		Bands: []Band{
			{Max: 4, Level: LevelLow},
			{Max: 9, Level: LevelMedium},
			{Max: 16, Level: LevelHigh},
		},
		Top: LevelExtreme,
	}
}

// Classify returns the level for a score.
func (t ClassifierTable) Classify(score int) Level {
	for _, b := range t.Bands {
		if score <= b.Max {
			return b.Level
		}
	}
	return t.Top
}

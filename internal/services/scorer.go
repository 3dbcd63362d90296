package services

// Global score weights. Defaults sum to 1.0; overrides are taken as-is and
// are the caller's responsibility to keep coherent.
const (
	GlobalWeightCV   = 0.4
	GlobalWeightSoft = 0.3
	GlobalWeightTech = 0.3
)

// ScoreWeights configures the composite score combination.
type ScoreWeights struct {
	CV   float64
	Soft float64
	Tech float64
}

// DefaultScoreWeights returns the documented 0.4/0.3/0.3 configuration.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		CV:   GlobalWeightCV,
		Soft: GlobalWeightSoft,
		Tech: GlobalWeightTech,
	}
}

// ComputeGlobalScore combines the three partial scores into one ranked score.
// A missing score counts as zero before weighting.
func ComputeGlobalScore(cvScore, softskillsScore, techScore *float64, weights ScoreWeights) float64 {
	sum := weights.CV*deref(cvScore) + weights.Soft*deref(softskillsScore) + weights.Tech*deref(techScore)
	return round2(sum)
}

func deref(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}

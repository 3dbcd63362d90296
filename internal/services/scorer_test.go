package services

import "testing"

func ptr(f float64) *float64 { return &f }

func TestComputeGlobalScore(t *testing.T) {
	tests := []struct {
		name    string
		cv      *float64
		soft    *float64
		tech    *float64
		weights ScoreWeights
		want    float64
	}{
		{
			name:    "documented reference case",
			cv:      ptr(80),
			soft:    ptr(60),
			tech:    ptr(100),
			weights: DefaultScoreWeights(),
			// 0.4*80 + 0.3*60 + 0.3*100 = 80.0
			want: 80.0,
		},
		{
			name:    "all nil scores give zero",
			weights: DefaultScoreWeights(),
			want:    0.0,
		},
		{
			name:    "nil input counts as zero before weighting",
			cv:      ptr(50),
			weights: DefaultScoreWeights(),
			want:    20.0,
		},
		{
			name:    "result rounded to two decimals",
			cv:      ptr(33.333),
			soft:    ptr(33.333),
			tech:    ptr(33.333),
			weights: DefaultScoreWeights(),
			want:    33.33,
		},
		{
			name:    "override weights taken as-is",
			cv:      ptr(100),
			soft:    ptr(0),
			tech:    ptr(0),
			weights: ScoreWeights{CV: 1, Soft: 0, Tech: 0},
			want:    100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGlobalScore(tt.cv, tt.soft, tt.tech, tt.weights)
			if got != tt.want {
				t.Errorf("ComputeGlobalScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultWeightsMatchDocumentedValues(t *testing.T) {
	weights := DefaultScoreWeights()
	if weights.CV != 0.4 || weights.Soft != 0.3 || weights.Tech != 0.3 {
		t.Errorf("default weights = %+v, want 0.4/0.3/0.3", weights)
	}

	if CVWeightSkills != 0.6 || CVWeightDiploma != 0.2 || CVWeightExperience != 0.2 {
		t.Errorf("cv weights = %v/%v/%v, want 0.6/0.2/0.2",
			CVWeightSkills, CVWeightDiploma, CVWeightExperience)
	}
}

func TestComputeGlobalScoreStaysInRange(t *testing.T) {
	weightSets := []ScoreWeights{
		DefaultScoreWeights(),
		{CV: 1, Soft: 0, Tech: 0},
		{CV: 0.5, Soft: 0.25, Tech: 0.25},
		{CV: 0.2, Soft: 0.5, Tech: 0.3},
	}
	scores := []float64{0, 12.5, 50, 99.99, 100}

	for _, weights := range weightSets {
		for _, cv := range scores {
			for _, soft := range scores {
				for _, tech := range scores {
					got := ComputeGlobalScore(ptr(cv), ptr(soft), ptr(tech), weights)
					if got < 0 || got > 100 {
						t.Fatalf("ComputeGlobalScore(%v, %v, %v, %+v) = %v, out of [0,100]",
							cv, soft, tech, weights, got)
					}
				}
			}
		}
	}
}

package services

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"

	"smartrecruit/recruitflow/internal/models"
)

func requirementsJSON(t *testing.T, skills ...string) json.RawMessage {
	t.Helper()

	var reqs []models.Requirement
	for _, skill := range skills {
		reqs = append(reqs, models.Requirement{Skill: skill, Level: "intermédiaire"})
	}

	data, err := json.Marshal(reqs)
	if err != nil {
		t.Fatalf("failed to marshal requirements: %v", err)
	}
	return data
}

func TestComputeCVScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.Candidate
		job       models.JobOffer
		want      float64
	}{
		{
			name: "documented reference case",
			candidate: models.Candidate{
				Skills:     pq.StringArray{"python", "Go"},
				Education:  json.RawMessage(`[{"degree": "Licence Informatique"}]`),
				Experience: json.RawMessage(`[{"position": "dev", "company": "acme"}]`),
			},
			job: models.JobOffer{
				DiplomaType:     "Master",
				ExperienceYears: 2,
			},
			// skills 0.5, diploma 0, experience min(1, 1/2)=0.5
			// 0.6*0.5 + 0.2*0 + 0.2*0.5 = 0.40
			want: 40.0,
		},
		{
			name: "skill match is case-insensitive",
			candidate: models.Candidate{
				Skills: pq.StringArray{"PYTHON", "sql"},
			},
			job: models.JobOffer{},
			// requirements set below
			want: 60.0,
		},
		{
			name: "no requirements yields zero skill score",
			candidate: models.Candidate{
				Skills:     pq.StringArray{"python", "sql", "go"},
				Experience: json.RawMessage(`[{"years": 5}]`),
			},
			job: models.JobOffer{ExperienceYears: 1},
			// 0.6*0 + 0.2*0 + 0.2*1 = 0.20
			want: 20.0,
		},
		{
			name: "diploma substring matches serialized education",
			candidate: models.Candidate{
				Education: json.RawMessage(`[{"degree": "Master Informatique", "school": "ENSA"}]`),
			},
			job: models.JobOffer{DiplomaType: "master"},
			// 0.6*0 + 0.2*1 + 0.2*0 = 0.20
			want: 20.0,
		},
		{
			name:      "zero required years treated as one",
			candidate: models.Candidate{Experience: json.RawMessage(`[{"years": 3}]`)},
			job:       models.JobOffer{ExperienceYears: 0},
			want:      20.0,
		},
		{
			name: "experience record without years counts as one year",
			candidate: models.Candidate{
				Experience: json.RawMessage(`[{"position": "a"}, {"position": "b"}]`),
			},
			job:  models.JobOffer{ExperienceYears: 2},
			want: 20.0,
		},
		{
			name: "string-encoded education still checked",
			candidate: models.Candidate{
				Education: json.RawMessage(`"[{\"degree\": \"Master GL\"}]"`),
			},
			job:  models.JobOffer{DiplomaType: "Master"},
			want: 20.0,
		},
		{
			name:      "empty candidate against empty job",
			candidate: models.Candidate{},
			job:       models.JobOffer{},
			want:      0.0,
		},
	}

	// Inject requirements where the test case needs them.
	tests[0].job.Requirements = requirementsJSON(t, "Python", "SQL")
	tests[1].job.Requirements = requirementsJSON(t, "Python", "SQL")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCVScore(&tt.candidate, &tt.job)
			if got != tt.want {
				t.Errorf("ComputeCVScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeCVScoreCaseInsensitiveBothSides(t *testing.T) {
	candidate := models.Candidate{Skills: pq.StringArray{"python"}}
	job := models.JobOffer{Requirements: requirementsJSON(t, "Python")}

	upper := models.Candidate{Skills: pq.StringArray{"PYTHON"}}

	if ComputeCVScore(&candidate, &job) != ComputeCVScore(&upper, &job) {
		t.Error("skill matching should ignore candidate skill casing")
	}
}

func TestComputeCVScoreBounds(t *testing.T) {
	candidate := models.Candidate{
		Skills:     pq.StringArray{"python", "sql", "go"},
		Education:  json.RawMessage(`[{"degree": "Master"}]`),
		Experience: json.RawMessage(`[{"years": 20}]`),
	}
	job := models.JobOffer{
		DiplomaType:     "Master",
		ExperienceYears: 1,
		Requirements:    requirementsJSON(t, "Python", "SQL", "Go"),
	}

	if got := ComputeCVScore(&candidate, &job); got != 100.0 {
		t.Errorf("full match = %v, want 100.0", got)
	}
}

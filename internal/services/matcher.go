package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"smartrecruit/recruitflow/internal/models"
)

// CV score weights. Fixed per scoring run, not configurable per call.
const (
	CVWeightSkills     = 0.6
	CVWeightDiploma    = 0.2
	CVWeightExperience = 0.2
)

// ComputeCVScore computes the deterministic 0-100 fit between a candidate
// and a job offer from three parts: required-skill coverage, diploma match
// and accumulated years of experience.
func ComputeCVScore(candidate *models.Candidate, job *models.JobOffer) float64 {
	scoreSkills := skillMatch(candidate, job)
	scoreDiploma := diplomaMatch(candidate, job)
	scoreExp := experienceMatch(candidate, job)

	score := CVWeightSkills*scoreSkills + CVWeightDiploma*scoreDiploma + CVWeightExperience*scoreExp

	return round2(100 * score)
}

// skillMatch is the share of the job's required skills present in the
// candidate's skill set, case-insensitive. A job without requirements
// scores 0 here regardless of the candidate.
func skillMatch(candidate *models.Candidate, job *models.JobOffer) float64 {
	required := requiredSkillNames(job)
	if len(required) == 0 {
		return 0
	}

	have := make(map[string]bool, len(candidate.Skills))
	for _, skill := range candidate.Skills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	matched := 0
	for _, name := range required {
		if have[name] {
			matched++
		}
	}

	return float64(matched) / float64(len(required))
}

// diplomaMatch reports whether the job's diploma type appears anywhere in
// the serialized text of an education record. This is a substring heuristic;
// "Master" inside an unrelated word counts as a match.
func diplomaMatch(candidate *models.Candidate, job *models.JobOffer) float64 {
	diploma := strings.ToLower(strings.TrimSpace(job.DiplomaType))
	if diploma == "" {
		return 0
	}

	for _, entry := range NormalizeList(candidate.Education) {
		if strings.Contains(strings.ToLower(serializeEntry(entry)), diploma) {
			return 1
		}
	}

	return 0
}

// experienceMatch caps total candidate years against the job's requirement.
// A record without a usable years field counts as one year. A job requiring
// zero years is treated as requiring one, so the ratio stays defined.
func experienceMatch(candidate *models.Candidate, job *models.JobOffer) float64 {
	totalYears := 0.0
	for _, entry := range NormalizeList(candidate.Experience) {
		totalYears += entryYears(entry)
	}

	requiredYears := job.ExperienceYears
	if requiredYears <= 0 {
		requiredYears = 1
	}

	return math.Min(1, totalYears/float64(requiredYears))
}

func requiredSkillNames(job *models.JobOffer) []string {
	var names []string
	for _, record := range NormalizeRecords(job.Requirements) {
		if skill, ok := record["skill"].(string); ok && strings.TrimSpace(skill) != "" {
			names = append(names, strings.ToLower(strings.TrimSpace(skill)))
		}
	}
	return names
}

func entryYears(entry any) float64 {
	record, ok := entry.(map[string]any)
	if !ok {
		return 1
	}

	switch years := record["years"].(type) {
	case float64:
		return years
	case int:
		return float64(years)
	default:
		return 1
	}
}

func serializeEntry(entry any) string {
	if data, err := json.Marshal(entry); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", entry)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

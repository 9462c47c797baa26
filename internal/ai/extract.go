package ai

import (
	"encoding/json"
	"strings"

	"github.com/accessihire/backend/internal/models"
)

// fallbackSummaryLimit bounds how much raw completion text is kept when the
// reply cannot be parsed as JSON.
const fallbackSummaryLimit = 500

// ParseCompletion recovers structured resume data from a completion text.
// Attempts, in order: a fenced code block, the first balanced-brace span,
// then a graceful fallback that stuffs the raw text into the summary.
// It never fails: malformed model output degrades instead of erroring.
func ParseCompletion(text string) *ResumeData {
	for _, span := range []string{fencedBlock(text), braceSpan(text)} {
		if span == "" {
			continue
		}
		var data ResumeData
		if err := json.Unmarshal([]byte(span), &data); err == nil {
			return &data
		}
	}
	return fallbackData(text)
}

// fencedBlock extracts the inner content of the first triple-backtick block,
// tolerating an optional "json" language tag.
func fencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]
	rest = strings.TrimPrefix(rest, "json")
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// braceSpan returns the first top-level {...} region, tracking nesting depth.
func braceSpan(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// fallbackData builds the minimal structure: the raw text (truncated) as the
// summary, every other section empty.
func fallbackData(text string) *ResumeData {
	runes := []rune(text)
	if len(runes) > fallbackSummaryLimit {
		runes = runes[:fallbackSummaryLimit]
	}
	return &ResumeData{
		PersonalInfo:   models.PersonalInfo{Summary: string(runes)},
		Experience:     []models.ExperienceEntry{},
		Education:      []models.EducationEntry{},
		Skills:         models.SkillSet{Technical: []string{}, Soft: []string{}},
		Projects:       []models.Project{},
		Certifications: []models.Certification{},
	}
}

package service

import (
	"math"
	"strings"
	"unicode"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/models"
)

const dateLayout = "2006-01-02"

// unknownEmail labels students whose profile record is missing.
const unknownEmail = "Unknown"

// BuildClassOverview folds progress records into per-student summaries and a
// class-wide summary. It is a pure single pass: students appear in the output
// in first-seen order of the input, so identical input yields identical output.
//
// last_active carries the date of the first record seen per student, not the
// most recent one. That matches the system's historical behavior; see the
// open-questions section of DESIGN.md before changing it.
func BuildClassOverview(records []models.ProgressRecord, emails map[string]string) ([]dto.StudentSummary, dto.ClassSummary) {
	students := make([]dto.StudentSummary, 0)
	index := make(map[string]int, len(records))

	var class dto.ClassSummary
	var totalScoreSum int

	for _, record := range records {
		pos, seen := index[record.UserID]
		if !seen {
			email, ok := emails[record.UserID]
			if !ok || email == "" {
				email = unknownEmail
			}

			students = append(students, dto.StudentSummary{
				ID:         record.UserID,
				Name:       displayName(email, record.UserID),
				Email:      email,
				LastActive: record.CreatedAt.Format(dateLayout),
				Scenarios:  make([]dto.ScenarioResult, 0, 1),
			})
			pos = len(students) - 1
			index[record.UserID] = pos
		}

		student := &students[pos]
		student.Scenarios = append(student.Scenarios, dto.ScenarioResult{
			Title:     record.ScenarioID,
			Score:     record.Score,
			Completed: record.Completed,
			Date:      resultDate(record),
		})

		student.ActiveCount++
		student.TotalScore += record.Score

		if record.Completed {
			student.CompletedCount++
			class.TotalCompletions++
		}

		totalScoreSum += record.Score
	}

	for i := range students {
		if students[i].ActiveCount > 0 {
			students[i].AvgScore = roundRatio(students[i].TotalScore, students[i].ActiveCount)
		}
	}

	if len(records) > 0 {
		class.AvgClassScore = roundRatio(totalScoreSum, len(records))
	}

	return students, class
}

// displayName derives the roster label: the email local part with its first
// letter capitalized, or a truncated identifier when no email is known.
func displayName(email, userID string) string {
	if strings.Contains(email, "@") {
		local := email[:strings.Index(email, "@")]
		return capitalize(local)
	}

	if len(userID) > 8 {
		return userID[:8] + "..."
	}
	return userID + "..."
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// resultDate prefers the completion timestamp, falling back to creation.
func resultDate(record models.ProgressRecord) string {
	if record.CompletedAt != nil {
		return record.CompletedAt.Format(dateLayout)
	}
	return record.CreatedAt.Format(dateLayout)
}

func roundRatio(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}

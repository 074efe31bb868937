package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safezard/safezard-api/internal/models"
)

func progressAt(userID, scenarioID string, score int, completed bool, day string) models.ProgressRecord {
	created, _ := time.Parse("2006-01-02", day)
	record := models.ProgressRecord{
		UserID:     userID,
		ScenarioID: scenarioID,
		Score:      score,
		Completed:  completed,
		CreatedAt:  created,
	}
	if completed {
		done := created
		record.CompletedAt = &done
	}
	return record
}

func TestBuildClassOverviewAggregation(t *testing.T) {
	records := []models.ProgressRecord{
		progressAt("user-a", "PC1", 80, true, "2026-03-01"),
		progressAt("user-a", "lab_fire_drill", 90, true, "2026-03-02"),
		progressAt("user-b", "PC1", 50, false, "2026-03-03"),
	}
	emails := map[string]string{
		"user-a": "alice@example.com",
		"user-b": "bob@example.com",
	}

	students, class := BuildClassOverview(records, emails)

	require.Len(t, students, 2)

	a := students[0]
	require.Equal(t, "user-a", a.ID)
	require.Equal(t, 2, a.ActiveCount)
	require.Equal(t, 2, a.CompletedCount)
	require.Equal(t, 170, a.TotalScore)
	require.Equal(t, 85, a.AvgScore)
	require.Len(t, a.Scenarios, 2)

	b := students[1]
	require.Equal(t, "user-b", b.ID)
	require.Equal(t, 1, b.ActiveCount)
	require.Equal(t, 0, b.CompletedCount)
	require.Equal(t, 50, b.AvgScore)

	require.Equal(t, 2, class.TotalCompletions)
	require.Equal(t, 73, class.AvgClassScore)
}

func TestBuildClassOverviewEmptyInput(t *testing.T) {
	students, class := BuildClassOverview(nil, nil)

	require.Empty(t, students)
	require.Equal(t, 0, class.TotalCompletions)
	require.Equal(t, 0, class.AvgClassScore)
}

func TestBuildClassOverviewFirstSeenOrder(t *testing.T) {
	records := []models.ProgressRecord{
		progressAt("user-c", "PC1", 10, false, "2026-03-01"),
		progressAt("user-a", "PC1", 20, false, "2026-03-01"),
		progressAt("user-c", "gas_leak", 30, false, "2026-03-02"),
		progressAt("user-b", "PC1", 40, false, "2026-03-02"),
	}

	students, _ := BuildClassOverview(records, nil)

	require.Len(t, students, 3)
	require.Equal(t, "user-c", students[0].ID)
	require.Equal(t, "user-a", students[1].ID)
	require.Equal(t, "user-b", students[2].ID)
}

func TestBuildClassOverviewDeterministic(t *testing.T) {
	records := []models.ProgressRecord{
		progressAt("user-a", "PC1", 80, true, "2026-03-01"),
		progressAt("user-b", "PC1", 60, false, "2026-03-02"),
	}
	emails := map[string]string{"user-a": "a@example.com"}

	first, firstClass := BuildClassOverview(records, emails)
	second, secondClass := BuildClassOverview(records, emails)

	require.Equal(t, first, second)
	require.Equal(t, firstClass, secondClass)
}

func TestBuildClassOverviewMissingProfile(t *testing.T) {
	records := []models.ProgressRecord{
		progressAt("abcdefgh1234", "PC1", 70, true, "2026-03-01"),
	}

	students, _ := BuildClassOverview(records, map[string]string{})

	require.Len(t, students, 1)
	require.Equal(t, "Unknown", students[0].Email)
	require.Equal(t, "abcdefgh...", students[0].Name)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Jane.doe", displayName("jane.doe@example.com", "ignored"))
	require.Equal(t, "Bob", displayName("bob@uni.edu", "ignored"))
	require.Equal(t, "abcdefgh...", displayName("not-an-email", "abcdefgh1234"))
	require.Equal(t, "short...", displayName("", "short"))
}

func TestResultDatePrefersCompletion(t *testing.T) {
	created, _ := time.Parse("2006-01-02", "2026-03-01")
	completed, _ := time.Parse("2006-01-02", "2026-03-05")

	record := models.ProgressRecord{CreatedAt: created, CompletedAt: &completed}
	require.Equal(t, "2026-03-05", resultDate(record))

	record.CompletedAt = nil
	require.Equal(t, "2026-03-01", resultDate(record))
}

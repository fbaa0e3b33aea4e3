package services

import (
	"testing"
	"time"

	"campconnect/internal/models"

	"github.com/lib/pq"
)

func TestMatchingTagsSubstringSymmetry(t *testing.T) {
	// "ai" matches "ai/ml" and vice versa
	if got := MatchingTags([]string{"ai"}, []string{"ai/ml"}); len(got) != 1 || got[0] != "ai" {
		t.Errorf("Expected [ai], got %v", got)
	}
	if got := MatchingTags([]string{"ai/ml"}, []string{"ai"}); len(got) != 1 || got[0] != "ai/ml" {
		t.Errorf("Expected [ai/ml], got %v", got)
	}
}

func TestMatchingTagsCaseInsensitive(t *testing.T) {
	got := MatchingTags([]string{"react"}, []string{"React"})
	if len(got) != 1 || got[0] != "react" {
		t.Errorf("Expected [react], got %v", got)
	}
}

func TestMatchingTagsEmptySets(t *testing.T) {
	if got := MatchingTags(nil, []string{"go"}); got != nil {
		t.Errorf("Expected nil for empty subject, got %v", got)
	}
	if got := MatchingTags([]string{"go"}, nil); got != nil {
		t.Errorf("Expected nil for empty candidate, got %v", got)
	}
}

func TestMatchingTagsOrderIndependent(t *testing.T) {
	a := MatchingTags([]string{"go", "rust", "ml"}, []string{"golang", "ml ops"})
	b := MatchingTags([]string{"ml", "go", "rust"}, []string{"ml ops", "golang"})
	if len(a) != len(b) {
		t.Errorf("Permuting tags changed match count: %v vs %v", a, b)
	}
}

func TestScoreUserNonNegative(t *testing.T) {
	if score := ScoreUser(nil, nil); score != 0 {
		t.Errorf("Expected 0 for no matches, got %d", score)
	}
	if score := ScoreUser([]string{"go"}, []string{"music"}); score != 3 {
		t.Errorf("Expected 2*1+1=3, got %d", score)
	}
}

func TestSuggestUsersScenario(t *testing.T) {
	viewer := models.User{ID: 1, Skills: pq.StringArray{"react", "ai"}}
	candidateA := models.User{ID: 2, Skills: pq.StringArray{"React", "Machine Learning"}}
	candidateB := models.User{ID: 3, Skills: pq.StringArray{"ai/ml"}}
	candidateC := models.User{ID: 4, Skills: pq.StringArray{"design"}}

	suggested := SuggestUsers(viewer, []models.User{candidateA, candidateB, candidateC}, 6)

	if len(suggested) != 2 {
		t.Fatalf("Expected 2 suggestions (C excluded at score 0), got %d", len(suggested))
	}
	for _, s := range suggested {
		if s.MatchScore != 2 {
			t.Errorf("Candidate %d: expected score 2, got %d", s.User.ID, s.MatchScore)
		}
		if s.MatchScore <= 0 {
			t.Errorf("Zero-score candidate %d leaked into output", s.User.ID)
		}
	}
	// Equal scores keep input order
	if suggested[0].User.ID != 2 || suggested[1].User.ID != 3 {
		t.Errorf("Expected stable order [2 3], got [%d %d]", suggested[0].User.ID, suggested[1].User.ID)
	}
}

func TestSuggestUsersSkipsViewerAndTruncates(t *testing.T) {
	viewer := models.User{ID: 1, Skills: pq.StringArray{"go"}}
	candidates := []models.User{
		{ID: 1, Skills: pq.StringArray{"go"}}, // the viewer themselves
		{ID: 2, Skills: pq.StringArray{"go"}},
		{ID: 3, Skills: pq.StringArray{"golang"}},
		{ID: 4, Skills: pq.StringArray{"go", "react"}},
		{ID: 5, Skills: pq.StringArray{"painting"}},
	}

	suggested := SuggestUsers(viewer, candidates, 2)
	if len(suggested) != 2 {
		t.Fatalf("Expected limit 2, got %d", len(suggested))
	}
	for _, s := range suggested {
		if s.User.ID == 1 {
			t.Error("Viewer appeared in their own suggestions")
		}
	}
}

func TestSuggestEventsPoolsTagsAndBreaksTiesByDate(t *testing.T) {
	viewer := models.User{
		ID:        1,
		Skills:    pq.StringArray{"react"},
		Interests: pq.StringArray{"ai"},
	}
	later := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	events := []models.Event{
		{ID: 1, Title: "Web Summit", Domains: pq.StringArray{"React"}, Date: later},
		{ID: 2, Title: "AI Night", Domains: pq.StringArray{"AI/ML"}, Date: sooner},
		{ID: 3, Title: "Pottery", Domains: pq.StringArray{"crafts"}, Date: sooner},
	}

	suggested := SuggestEvents(viewer, events, 6)
	if len(suggested) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(suggested))
	}
	// Both score 1; the earlier event wins the tie
	if suggested[0].Event.ID != 2 {
		t.Errorf("Expected earlier event 2 first, got %d", suggested[0].Event.ID)
	}
	if suggested[0].MatchScore != 1 {
		t.Errorf("Expected interest tag to count once for events, got score %d", suggested[0].MatchScore)
	}
}

func TestSuggestEventsEmptyTagProfile(t *testing.T) {
	viewer := models.User{ID: 1}
	events := []models.Event{
		{ID: 1, Domains: pq.StringArray{"AI/ML"}, Date: time.Now()},
	}
	if suggested := SuggestEvents(viewer, events, 3); len(suggested) != 0 {
		t.Errorf("Expected no suggestions for an empty tag profile, got %d", len(suggested))
	}
}

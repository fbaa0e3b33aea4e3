package services

import (
	"sort"
	"strings"

	"campconnect/internal/models"
	"campconnect/internal/utils"
)

// Suggestion limits used by the dashboard widgets and the discover page.
const (
	DashboardSuggestionLimit = 3
	DiscoverSuggestionLimit  = 6
)

type SuggestedUser struct {
	models.User
	MatchScore        int      `json:"match_score"`
	MatchingSkills    []string `json:"matching_skills"`
	MatchingInterests []string `json:"matching_interests"`
}

type SuggestedEvent struct {
	models.Event
	MatchScore      int      `json:"match_score"`
	MatchingDomains []string `json:"matching_domains"`
}

// MatchingTags returns the subject tags that have a case-insensitive
// substring match in either direction against any candidate tag ("ai"
// matches "ai/ml" and vice versa). This is a deliberately loose token
// containment match, not semantic similarity.
func MatchingTags(subject, candidate []string) []string {
	if len(subject) == 0 || len(candidate) == 0 {
		return nil
	}

	cands := utils.LowerTags(candidate)
	var matched []string
	for _, tag := range utils.LowerTags(subject) {
		if tag == "" {
			continue
		}
		for _, other := range cands {
			if other == "" {
				continue
			}
			if strings.Contains(other, tag) || strings.Contains(tag, other) {
				matched = append(matched, tag)
				break
			}
		}
	}
	return matched
}

// ScoreUser weighs shared skills double against shared interests.
func ScoreUser(matchingSkills, matchingInterests []string) int {
	return len(matchingSkills)*2 + len(matchingInterests)
}

// SuggestUsers ranks candidates against the viewer's skills and interests.
// Zero-score candidates are dropped; ties keep the incoming order.
func SuggestUsers(viewer models.User, candidates []models.User, limit int) []SuggestedUser {
	scored := make([]SuggestedUser, 0, len(candidates))
	for _, other := range candidates {
		if other.ID == viewer.ID {
			continue
		}
		skills := MatchingTags(viewer.Skills, other.Skills)
		interests := MatchingTags(viewer.Interests, other.Interests)
		score := ScoreUser(skills, interests)
		if score <= 0 {
			continue
		}
		scored = append(scored, SuggestedUser{
			User:              other,
			MatchScore:        score,
			MatchingSkills:    skills,
			MatchingInterests: interests,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// SuggestEvents pools the viewer's skills and interests into one tag list
// and ranks events by how many of those tags match the event's domains.
// Equal scores fall back to the earlier event date.
func SuggestEvents(viewer models.User, events []models.Event, limit int) []SuggestedEvent {
	viewerTags := append(append([]string{}, viewer.Skills...), viewer.Interests...)

	scored := make([]SuggestedEvent, 0, len(events))
	for _, event := range events {
		domains := MatchingTags(viewerTags, event.Domains)
		if len(domains) == 0 {
			continue
		}
		scored = append(scored, SuggestedEvent{
			Event:           event,
			MatchScore:      len(domains),
			MatchingDomains: domains,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].Date.Before(scored[j].Date)
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

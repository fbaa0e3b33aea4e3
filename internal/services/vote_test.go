package services

import (
	"testing"

	"campconnect/internal/models"
)

func TestSummarizeVotes(t *testing.T) {
	rows := []VoteRow{
		{UserID: 1, VoteType: models.VoteUp},
		{UserID: 2, VoteType: models.VoteUp},
		{UserID: 3, VoteType: models.VoteDown},
	}

	summary := SummarizeVotes(rows, 3)
	if summary.Upvotes != 2 || summary.Downvotes != 1 {
		t.Errorf("Expected 2 up / 1 down, got %d / %d", summary.Upvotes, summary.Downvotes)
	}
	if summary.NetScore != 1 {
		t.Errorf("Expected net score 1, got %d", summary.NetScore)
	}
	if summary.ViewerVote != models.VoteDown {
		t.Errorf("Expected viewer vote downvote, got %q", summary.ViewerVote)
	}
}

func TestSummarizeVotesAnonymous(t *testing.T) {
	rows := []VoteRow{{UserID: 1, VoteType: models.VoteUp}}
	summary := SummarizeVotes(rows, 0)
	if summary.ViewerVote != "" {
		t.Errorf("Anonymous viewer must get no personal vote state, got %q", summary.ViewerVote)
	}
}

func TestSummarizeVotesEmpty(t *testing.T) {
	summary := SummarizeVotes(nil, 1)
	if summary.Upvotes != 0 || summary.Downvotes != 0 || summary.NetScore != 0 || summary.ViewerVote != "" {
		t.Errorf("Expected zero summary, got %+v", summary)
	}
}

func TestDecideVote(t *testing.T) {
	// No existing vote: create
	if action := DecideVote("", models.VoteUp); action != VoteCreate {
		t.Errorf("Expected create, got %v", action)
	}
	// Same kind again: toggle off
	if action := DecideVote(models.VoteUp, models.VoteUp); action != VoteDelete {
		t.Errorf("Expected delete on same-kind recast, got %v", action)
	}
	// Different kind: flip in place
	if action := DecideVote(models.VoteUp, models.VoteDown); action != VoteUpdate {
		t.Errorf("Expected update on kind change, got %v", action)
	}
}

// Replaying cast sequences over the decision table must keep at most one
// vote per (viewer, subject).
func TestCastSequencesKeepSingleVote(t *testing.T) {
	apply := func(existing, requested string) string {
		switch DecideVote(existing, requested) {
		case VoteCreate, VoteUpdate:
			return requested
		default:
			return ""
		}
	}

	// upvote then upvote: back to absent
	state := apply("", models.VoteUp)
	state = apply(state, models.VoteUp)
	if state != "" {
		t.Errorf("upvote,upvote: expected absent, got %q", state)
	}

	// upvote then downvote: exactly one row, kind downvote
	state = apply("", models.VoteUp)
	state = apply(state, models.VoteDown)
	if state != models.VoteDown {
		t.Errorf("upvote,downvote: expected downvote, got %q", state)
	}
}

func TestValidVoteType(t *testing.T) {
	if !ValidVoteType(models.VoteUp) || !ValidVoteType(models.VoteDown) {
		t.Error("upvote/downvote must be valid kinds")
	}
	if ValidVoteType("sideways") {
		t.Error("Unknown kinds must be rejected")
	}
}

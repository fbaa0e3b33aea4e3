package services

import (
	"campconnect/internal/models"
)

// VoteRow is one vote on a subject, independent of which table it came from.
type VoteRow struct {
	UserID   uint
	VoteType string
}

// VoteSummary is the display-ready aggregate for one subject.
type VoteSummary struct {
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	NetScore   int    `json:"net_score"`
	ViewerVote string `json:"viewer_vote,omitempty"` // upvote, downvote or empty
}

// SummarizeVotes computes counts, net score and the viewer's own vote.
// viewerID 0 means anonymous: counts only, no personal state.
func SummarizeVotes(rows []VoteRow, viewerID uint) VoteSummary {
	var summary VoteSummary
	for _, row := range rows {
		switch row.VoteType {
		case models.VoteUp:
			summary.Upvotes++
		case models.VoteDown:
			summary.Downvotes++
		}
		if viewerID != 0 && row.UserID == viewerID {
			summary.ViewerVote = row.VoteType
		}
	}
	summary.NetScore = summary.Upvotes - summary.Downvotes
	return summary
}

type VoteAction int

const (
	VoteCreate VoteAction = iota // no existing vote: insert the requested kind
	VoteDelete                   // same kind recast: toggle off
	VoteUpdate                   // different kind: flip in place
)

// DecideVote maps the viewer's existing vote kind ("" for none) and the
// requested kind onto the single mutation that keeps at most one vote per
// (viewer, subject).
func DecideVote(existing, requested string) VoteAction {
	switch existing {
	case "":
		return VoteCreate
	case requested:
		return VoteDelete
	default:
		return VoteUpdate
	}
}

// ValidVoteType reports whether a request names a known vote kind.
func ValidVoteType(t string) bool {
	return t == models.VoteUp || t == models.VoteDown
}

package services

import (
	"html/template"
	"sort"
	"time"

	"campconnect/internal/models"
)

// ThreadNode is one flat comment row, independent of which table it came from.
type ThreadNode struct {
	ID        uint
	UserID    uint
	ParentID  *uint
	Content   string
	CreatedAt time.Time
}

// ThreadReply is a display-ready leaf node.
type ThreadReply struct {
	ID          uint              `json:"id"`
	Content     string            `json:"content"`
	ContentHTML template.HTML     `json:"content_html,omitempty"` // filled by the handler
	CreatedAt   time.Time         `json:"created_at"`
	Author      models.PublicUser `json:"author"`
}

// ThreadComment is a display-ready top-level node carrying its replies
// inline. Replies never nest further.
type ThreadComment struct {
	ThreadReply
	Replies []ThreadReply `json:"replies"`
}

// AssembleThread builds the two-level tree: top-level comments newest first,
// replies within a parent oldest first. A missing author degrades to the
// "Unknown" sentinel rather than failing the assembly. No top-level rows
// yields an empty slice.
func AssembleThread(rows []ThreadNode, authors map[uint]models.PublicUser) []ThreadComment {
	var topLevel []ThreadNode
	repliesByParent := make(map[uint][]ThreadNode)
	for _, row := range rows {
		if row.ParentID == nil {
			topLevel = append(topLevel, row)
		} else {
			repliesByParent[*row.ParentID] = append(repliesByParent[*row.ParentID], row)
		}
	}

	sort.SliceStable(topLevel, func(i, j int) bool {
		return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
	})

	thread := make([]ThreadComment, 0, len(topLevel))
	for _, parent := range topLevel {
		children := repliesByParent[parent.ID]
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].CreatedAt.Before(children[j].CreatedAt)
		})

		replies := make([]ThreadReply, 0, len(children))
		for _, child := range children {
			replies = append(replies, ThreadReply{
				ID:        child.ID,
				Content:   child.Content,
				CreatedAt: child.CreatedAt,
				Author:    authorOrUnknown(authors, child.UserID),
			})
		}

		thread = append(thread, ThreadComment{
			ThreadReply: ThreadReply{
				ID:        parent.ID,
				Content:   parent.Content,
				CreatedAt: parent.CreatedAt,
				Author:    authorOrUnknown(authors, parent.UserID),
			},
			Replies: replies,
		})
	}
	return thread
}

func authorOrUnknown(authors map[uint]models.PublicUser, userID uint) models.PublicUser {
	if author, ok := authors[userID]; ok {
		return author
	}
	return models.PublicUser{ID: userID, Name: "Unknown"}
}

// AuthorIDs collects the distinct author IDs of a flat row set, so the
// handler can enrich a whole thread with one users query.
func AuthorIDs(rows []ThreadNode) []uint {
	seen := make(map[uint]bool, len(rows))
	var ids []uint
	for _, row := range rows {
		if !seen[row.UserID] {
			seen[row.UserID] = true
			ids = append(ids, row.UserID)
		}
	}
	return ids
}

// EventCommentNodes flattens event comment rows for assembly.
func EventCommentNodes(comments []models.EventComment) []ThreadNode {
	nodes := make([]ThreadNode, len(comments))
	for i, c := range comments {
		nodes[i] = ThreadNode{ID: c.ID, UserID: c.UserID, ParentID: c.ParentID, Content: c.Content, CreatedAt: c.CreatedAt}
	}
	return nodes
}

// ProjectCommentNodes flattens project comment rows for assembly.
func ProjectCommentNodes(comments []models.ProjectComment) []ThreadNode {
	nodes := make([]ThreadNode, len(comments))
	for i, c := range comments {
		nodes[i] = ThreadNode{ID: c.ID, UserID: c.UserID, ParentID: c.ParentID, Content: c.Content, CreatedAt: c.CreatedAt}
	}
	return nodes
}

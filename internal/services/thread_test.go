package services

import (
	"testing"
	"time"

	"campconnect/internal/models"
)

func at(sec int) time.Time {
	return time.Date(2026, 8, 1, 12, 0, sec, 0, time.UTC)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestAssembleThreadOrdering(t *testing.T) {
	rows := []ThreadNode{
		{ID: 1, UserID: 10, ParentID: nil, CreatedAt: at(10)},
		{ID: 2, UserID: 10, ParentID: nil, CreatedAt: at(20)},
		{ID: 3, UserID: 11, ParentID: uintPtr(1), CreatedAt: at(15)},
		{ID: 4, UserID: 12, ParentID: uintPtr(1), CreatedAt: at(12)},
	}
	authors := map[uint]models.PublicUser{
		10: {ID: 10, Name: "Ada"},
		11: {ID: 11, Name: "Ben"},
		12: {ID: 12, Name: "Cai"},
	}

	thread := AssembleThread(rows, authors)
	if len(thread) != 2 {
		t.Fatalf("Expected 2 top-level comments, got %d", len(thread))
	}

	// Newest top-level first
	if thread[0].ID != 2 || thread[1].ID != 1 {
		t.Errorf("Expected top-level order [2 1], got [%d %d]", thread[0].ID, thread[1].ID)
	}

	// A parent without replies keeps an empty list, not nil
	if thread[0].Replies == nil || len(thread[0].Replies) != 0 {
		t.Errorf("Expected empty reply list for comment 2, got %v", thread[0].Replies)
	}

	// Replies oldest first
	replies := thread[1].Replies
	if len(replies) != 2 || replies[0].ID != 4 || replies[1].ID != 3 {
		t.Fatalf("Expected replies [4 3], got %v", replies)
	}
	if !replies[0].CreatedAt.Before(replies[1].CreatedAt) {
		t.Error("Replies are not in ascending creation order")
	}
}

func TestAssembleThreadUnknownAuthor(t *testing.T) {
	rows := []ThreadNode{
		{ID: 1, UserID: 99, ParentID: nil, CreatedAt: at(1)},
	}

	thread := AssembleThread(rows, map[uint]models.PublicUser{})
	if len(thread) != 1 {
		t.Fatalf("A missing author must not drop the comment, got %d comments", len(thread))
	}
	if thread[0].Author.Name != "Unknown" {
		t.Errorf("Expected Unknown placeholder, got %q", thread[0].Author.Name)
	}
	if thread[0].Author.AvatarURL != "" {
		t.Errorf("Placeholder author must have no avatar, got %q", thread[0].Author.AvatarURL)
	}
}

func TestAssembleThreadEmpty(t *testing.T) {
	thread := AssembleThread(nil, nil)
	if thread == nil || len(thread) != 0 {
		t.Errorf("Expected empty slice for no rows, got %v", thread)
	}
}

func TestAuthorIDsDistinct(t *testing.T) {
	rows := []ThreadNode{
		{ID: 1, UserID: 5},
		{ID: 2, UserID: 5},
		{ID: 3, UserID: 7},
	}
	ids := AuthorIDs(rows)
	if len(ids) != 2 {
		t.Errorf("Expected 2 distinct author IDs, got %v", ids)
	}
}

func TestEventCommentNodes(t *testing.T) {
	comments := []models.EventComment{
		{ID: 3, EventID: 1, UserID: 2, ParentID: uintPtr(1), Content: "hi", CreatedAt: at(5)},
	}
	nodes := EventCommentNodes(comments)
	if len(nodes) != 1 || nodes[0].ID != 3 || *nodes[0].ParentID != 1 {
		t.Errorf("Flattening lost fields: %+v", nodes)
	}
}

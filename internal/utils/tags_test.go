package utils

import (
	"testing"
)

func TestSplitTagList(t *testing.T) {
	tags := SplitTagList("AI/ML, Web Dev, ,IoT,")
	if len(tags) != 3 {
		t.Fatalf("Expected 3 tags, got %v", tags)
	}
	if tags[0] != "AI/ML" || tags[1] != "Web Dev" || tags[2] != "IoT" {
		t.Errorf("Unexpected tags: %v", tags)
	}
}

func TestSplitTagListEmpty(t *testing.T) {
	if tags := SplitTagList(""); len(tags) != 0 {
		t.Errorf("Expected no tags, got %v", tags)
	}
}

func TestLowerTags(t *testing.T) {
	tags := LowerTags([]string{" React ", "AI"})
	if tags[0] != "react" || tags[1] != "ai" {
		t.Errorf("Unexpected lowering: %v", tags)
	}
	if LowerTags(nil) != nil {
		t.Error("Nil input must stay nil")
	}
}

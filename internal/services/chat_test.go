package services

import (
	"testing"
)

func TestChatKeyDeterministic(t *testing.T) {
	if ChatKey(3, 17) != ChatKey(17, 3) {
		t.Error("Both participants must derive the same conversation key")
	}
	if got := ChatKey(3, 17); got != "3_17" {
		t.Errorf("Expected 3_17, got %s", got)
	}
	if got := ChatKey(17, 3); got != "3_17" {
		t.Errorf("Expected 3_17, got %s", got)
	}
}

func TestChatKeyDistinctPairs(t *testing.T) {
	// 1_2 and 12_? style collisions must not happen with the separator
	if ChatKey(1, 23) == ChatKey(12, 3) {
		t.Error("Different pairs collided on the same key")
	}
}

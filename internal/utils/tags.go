package utils

import (
	"strings"
)

// SplitTagList turns a comma-separated form value into trimmed tags,
// dropping empties ("AI/ML, Web Dev," -> ["AI/ML" "Web Dev"]).
func SplitTagList(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// LowerTags lower-cases a tag list for matching. Nil stays nil.
func LowerTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return out
}

package domain

import (
	"sort"
	"strings"
)

func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags lowercases, trims, drops empties and de-duplicates. The result is sorted.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = NormalizeTag(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	if len(normalized) == 0 {
		return nil
	}

	sort.Strings(normalized)
	return normalized
}

// TagChange is the effective outcome of applying add and remove lists to a tag set.
type TagChange struct {
	Tags    []string
	Added   []string
	Removed []string
}

func (c TagChange) Changed() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0
}

// ApplyTags adds before it removes, so a tag named in both lists ends up absent
// and is reported in neither Added nor Removed unless it was present before.
func ApplyTags(current, add, remove []string) TagChange {
	set := make(map[string]struct{}, len(current)+len(add))
	for _, tag := range current {
		set[tag] = struct{}{}
	}

	added := make(map[string]struct{}, len(add))
	for _, tag := range NormalizeTags(add) {
		if _, ok := set[tag]; ok {
			continue
		}
		set[tag] = struct{}{}
		added[tag] = struct{}{}
	}

	change := TagChange{Added: []string{}, Removed: []string{}}
	for _, tag := range NormalizeTags(remove) {
		if _, ok := set[tag]; !ok {
			continue
		}
		delete(set, tag)
		if _, ok := added[tag]; ok {
			delete(added, tag)
			continue
		}
		change.Removed = append(change.Removed, tag)
	}
	for _, tag := range NormalizeTags(add) {
		if _, ok := added[tag]; ok {
			change.Added = append(change.Added, tag)
		}
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	change.Tags = NormalizeTags(tags)
	return change
}

package domain

import "sort"

// AssembleSnapshot rebuilds a session from its stored rows. Thoughts are ordered by
// number, each branch receives the thoughts carrying its id in global order, and tags
// are attached by thought number. Branches keep the order they were given in.
func AssembleSnapshot(meta SessionMetadata, thoughts []Thought, branches []Branch, tagsByThought map[int][]string) SessionSnapshot {
	ordered := make([]Thought, len(thoughts))
	copy(ordered, thoughts)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	for i := range ordered {
		ordered[i].Tags = NormalizeTags(tagsByThought[ordered[i].Number])
		if ordered[i].Kind == "" {
			ordered[i].Kind = ClassifyKind(ordered[i])
		}
	}

	assembled := make([]Branch, 0, len(branches))
	for _, branch := range branches {
		branch.Thoughts = nil
		for _, t := range ordered {
			if t.BranchID == branch.ID {
				branch.Thoughts = append(branch.Thoughts, t)
			}
		}
		assembled = append(assembled, branch)
	}

	meta.ThoughtCount = len(ordered)
	meta.BranchCount = len(assembled)

	return SessionSnapshot{
		Metadata: meta,
		Thoughts: ordered,
		Branches: assembled,
	}
}

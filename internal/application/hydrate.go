package application

import "github.com/bnema/maxential-thinking/internal/domain"

// restore replaces the engine state with a stored session. The counter, completion
// flag and active branch are not stored; they are derived here.
//
// The active branch is the first branch still marked active in creation order. When
// several were active at save time only the first one is picked up again.
func (e *Engine) restore(snapshot domain.SessionSnapshot) {
	e.clear()

	e.thoughts = make([]domain.Thought, 0, len(snapshot.Thoughts))
	for _, t := range snapshot.Thoughts {
		e.thoughts = append(e.thoughts, cloneThought(t))
		if t.Number > e.counter {
			e.counter = t.Number
		}
	}

	for _, b := range snapshot.Branches {
		branch := b
		branch.Thoughts = nil
		e.branches[branch.ID] = &branch
		e.branchOrder = append(e.branchOrder, branch.ID)
		if e.activeBranch == "" && branch.Status == domain.BranchActive {
			e.activeBranch = branch.ID
		}
	}

	if n := len(e.thoughts); n > 0 {
		e.complete = e.thoughts[n-1].IsConclusion()
	}
	e.sessionID = snapshot.Metadata.ID
}

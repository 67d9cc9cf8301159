package ports

import "github.com/bnema/maxential-thinking/internal/domain"

// ThoughtSink receives every thought right after it is numbered.
type ThoughtSink interface {
	ThoughtRecorded(thought domain.Thought, totalThoughts int)
}

package ports

import (
	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/google/uuid"
)

type IDGenerator interface {
	NewSessionID() domain.SessionID
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewSessionID() domain.SessionID {
	return domain.SessionID(uuid.NewString())
}

package mappers

import (
	"fmt"

	"modgate/internal/domain/license"
	"modgate/internal/infrastructure/persistence/models"
)

// SessionMapper converts between session domain objects and GORM models.
type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToModel converts a domain session to its persistence model.
func (m *SessionMapper) ToModel(session *license.Session) (*models.SessionModel, error) {
	if session == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}

	return &models.SessionModel{
		AccountID: session.AccountID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

// ToDomain converts a persistence model to a domain session.
func (m *SessionMapper) ToDomain(model *models.SessionModel) (*license.Session, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil")
	}

	return &license.Session{
		AccountID: model.AccountID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

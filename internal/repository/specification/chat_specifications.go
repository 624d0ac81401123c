package specification

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// Chronological orders messages oldest first; id breaks timestamp ties.
type Chronological struct{}

func (Chronological) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "timestamp"}},
		{Column: clause.Column{Name: "id"}},
	}})
}

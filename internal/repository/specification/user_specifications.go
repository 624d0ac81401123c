package specification

import "gorm.io/gorm"

// ByEmailOrUsername matches either column, used for duplicate checks and login.
type ByEmailOrUsername struct {
	Email    string
	Username string
}

func (s ByEmailOrUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(db.Session(&gorm.Session{NewDB: true}).
		Where("email = ?", s.Email).
		Or("username = ?", s.Username))
}

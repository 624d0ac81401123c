// Package specification holds composable query scopes; repositories apply
// them in the order given.
package specification

import "gorm.io/gorm"

type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

package implementation

import (
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/pkg/database"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	if database.IsUniqueViolation(err) {
		return contract.ErrDuplicate
	}
	return err
}

package service

import (
	"errors"

	"gorm.io/gorm"
)

// isDuplicate reports a unique index violation. It covers a concurrent
// insert that lands between the existence check and the write.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

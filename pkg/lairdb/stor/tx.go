package stor

import (
	"gorm.io/gorm"
)

const txRetryCount = 3

// WithTxRetry runs fn inside a transaction, retrying a few times. Sqlite
// returns busy errors under write contention, so a failed transaction is
// retried rather than surfaced immediately.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	for i := 0; i < txRetryCount; i++ {
		err = db.Transaction(fn)
		if err == nil {
			break
		}
	}

	return err
}

package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKey reports MySQL error 1062 (duplicate entry for a
// UNIQUE index).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/core/repository/dao"
)

// wrapGormError maps driver errors onto dao sentinels. The driver error stays
// in the chain for logging.
func wrapGormError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return dao.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", dao.ErrDuplicateEntry, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", dao.ErrForeignKey, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062: // 唯一性约束冲突
			return fmt.Errorf("%w: %w", dao.ErrDuplicateEntry, err)
		case 1451, 1452:
			return fmt.Errorf("%w: %w", dao.ErrForeignKey, err)
		case 1044, 1045, 1048, 1049, 1146:
			return fmt.Errorf("%w: %w", dao.ErrDatabaseInternal, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %w", dao.ErrDuplicateEntry, err)
		case "23503":
			return fmt.Errorf("%w: %w", dao.ErrForeignKey, err)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", dao.ErrDuplicateEntry, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", dao.ErrForeignKey, err)
		}
	}

	if errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrUnsupportedRelation) {
		return fmt.Errorf("%w: %w", dao.ErrDatabaseInternal, err)
	}

	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"user-group-service/internal/entity"
)

// MySQL error number for a duplicate entry on a unique key.
const dupEntryErrNo = 1062

type GroupRepository struct {
	db    *sql.DB
	table string
}

func NewGroupRepository(db *sql.DB, table string) *GroupRepository {
	return &GroupRepository{db: db, table: table}
}

func (r *GroupRepository) ListGroups(ctx context.Context) ([]entity.Group, error) {
	query := fmt.Sprintf("SELECT id, group_name FROM `%s` ORDER BY id ASC", r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []entity.Group{}
	for rows.Next() {
		group := entity.Group{}
		err := rows.Scan(&group.ID, &group.GroupName)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	query := fmt.Sprintf("INSERT INTO `%s` (group_name) VALUES (?)", r.table)

	res, err := r.db.ExecContext(ctx, query, group.GroupName)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryErrNo {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateGroupName, err)
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	group.ID = int(id)
	return group, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"user-group-service/internal/entity"
)

type UserRepository struct {
	db    *sql.DB
	table string
}

// NewUserRepository wraps the shared connection pool. The table name comes
// from config at startup, never from request data.
func NewUserRepository(db *sql.DB, table string) *UserRepository {
	return &UserRepository{db: db, table: table}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	query := fmt.Sprintf("SELECT id, name, surname, marks, group_id FROM `%s` ORDER BY id ASC", r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		user := entity.User{}
		err := rows.Scan(&user.ID, &user.Name, &user.Surname, &user.Marks, &user.GroupID)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := fmt.Sprintf("INSERT INTO `%s` (name, surname, marks, group_id) VALUES (?, ?, ?, ?)", r.table)

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Surname, user.Marks, user.GroupID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

// UpdateMarks sets the marks for one user and reports the number of
// affected rows, 0 when no row has that id.
func (r *UserRepository) UpdateMarks(ctx context.Context, id int, marks int) (int64, error) {
	query := fmt.Sprintf("UPDATE `%s` SET marks = ? WHERE id = ?", r.table)

	res, err := r.db.ExecContext(ctx, query, marks, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// DeleteUser removes one user by id and reports the number of affected
// rows, 0 when no row has that id.
func (r *UserRepository) DeleteUser(ctx context.Context, id int) (int64, error) {
	query := fmt.Sprintf("DELETE FROM `%s` WHERE id = ?", r.table)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

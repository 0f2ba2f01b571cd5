package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"user-group-service/internal/entity"
)

func TestListUsersReturnsRowsInIDOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "surname", "marks", "group_id"}).
		AddRow(1, "Ana", "Lopez", 7, 1).
		AddRow(2, "Jo", "Doe", 5, 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, surname, marks, group_id FROM `users` ORDER BY id ASC")).
		WillReturnRows(rows)

	repo := NewUserRepository(db, "users")
	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[1].ID != 2 {
		t.Fatalf("expected ids [1 2], got [%d %d]", users[0].ID, users[1].ID)
	}
	if users[0].Name != "Ana" || users[0].Surname != "Lopez" || users[0].Marks != 7 || users[0].GroupID != 1 {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUserAssignsInsertID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (name, surname, marks, group_id) VALUES (?, ?, ?, ?)")).
		WithArgs("Ana", "Lopez", 7, 1).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewUserRepository(db, "users")
	created, err := repo.CreateUser(context.Background(), &entity.User{Name: "Ana", Surname: "Lopez", Marks: 7, GroupID: 1})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("expected id 3, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateMarksReportsAffectedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET marks = ? WHERE id = ?")).
		WithArgs(9, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET marks = ? WHERE id = ?")).
		WithArgs(9, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepository(db, "users")

	affected, err := repo.UpdateMarks(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("UpdateMarks returned error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	affected, err = repo.UpdateMarks(context.Background(), 99, 9)
	if err != nil {
		t.Fatalf("UpdateMarks returned error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows, got %d", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUserReportsAffectedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE id = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepository(db, "users")
	affected, err := repo.DeleteUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows, got %d", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateGroupDuplicateNameReturnsSentinel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `groups` (group_name) VALUES (?)")).
		WithArgs("Math").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Math' for key 'group_name'"})

	repo := NewGroupRepository(db, "groups")
	_, err = repo.CreateGroup(context.Background(), &entity.Group{GroupName: "Math"})
	if !errors.Is(err, ErrDuplicateGroupName) {
		t.Fatalf("expected ErrDuplicateGroupName, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateGroupAssignsInsertID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `groups` (group_name) VALUES (?)")).
		WithArgs("Math").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewGroupRepository(db, "groups")
	created, err := repo.CreateGroup(context.Background(), &entity.Group{GroupName: "Math"})
	if err != nil {
		t.Fatalf("CreateGroup returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListGroupsUsesConfiguredTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "group_name"}).AddRow(1, "Math")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, group_name FROM `class_groups` ORDER BY id ASC")).
		WillReturnRows(rows)

	repo := NewGroupRepository(db, "class_groups")
	groups, err := repo.ListGroups(context.Background())
	if err != nil {
		t.Fatalf("ListGroups returned error: %v", err)
	}
	if len(groups) != 1 || groups[0].GroupName != "Math" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

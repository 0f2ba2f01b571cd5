package migrations

import (
	"database/sql"
	"fmt"
)

// CreateGroupsTable creates the groups table if it does not exist.
func CreateGroupsTable(db *sql.DB, table string) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS `+"`%s`"+` (
			id INT AUTO_INCREMENT PRIMARY KEY,
			group_name VARCHAR(25) NOT NULL UNIQUE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`, table)

	_, err := db.Exec(query)
	return err
}

// CreateUsersTable creates the users table if it does not exist.
func CreateUsersTable(db *sql.DB, table string) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS `+"`%s`"+` (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(30) NOT NULL,
			surname VARCHAR(80) NOT NULL,
			marks INT NOT NULL DEFAULT 0,
			group_id INT NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`, table)

	_, err := db.Exec(query)
	return err
}

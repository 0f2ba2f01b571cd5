package entity

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Marks   int    `json:"marks"`
	GroupID int    `json:"group_id"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(30) NOT NULL,
	surname VARCHAR(80) NOT NULL,
	marks INT NOT NULL DEFAULT 0,
	group_id INT NOT NULL
);

// group_id references groups(id) but no FK constraint is declared;
// inserts are not checked against the groups table.
*/

package entity

type Group struct {
	ID        int    `json:"id"`
	GroupName string `json:"group_name"`
}

/*
Mysql Schema:

CREATE TABLE groups (
	id INT AUTO_INCREMENT PRIMARY KEY,
	group_name VARCHAR(25) NOT NULL UNIQUE
);
*/

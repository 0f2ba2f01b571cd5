package config

import "os"

// Config holds everything the process reads from the environment.
// Loaded once at startup; there is no hot reload.
type Config struct {
	MySQLURI    string
	UsersTable  string
	GroupsTable string
	FrontOrigin string
	Port        string
}

func Load() *Config {
	return &Config{
		MySQLURI:    os.Getenv("MYSQL_URI"),
		UsersTable:  getEnv("TABLE_USERS", "users"),
		GroupsTable: getEnv("TABLE_GROUPS", "groups"),
		FrontOrigin: getEnv("FRONT_ORIGIN", "http://localhost:4200"),
		Port:        getEnv("PORT", "5000"),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

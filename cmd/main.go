package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"user-group-service/internal/api"
	"user-group-service/internal/config"
	"user-group-service/internal/repository"
	"user-group-service/internal/service"
	"user-group-service/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := connectDB(cfg.MySQLURI)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	log.Println("Connected to MySQL")

	if err := migrations.CreateGroupsTable(db, cfg.GroupsTable); err != nil {
		log.Fatalf("Failed to create %s table: %v", cfg.GroupsTable, err)
	}
	if err := migrations.CreateUsersTable(db, cfg.UsersTable); err != nil {
		log.Fatalf("Failed to create %s table: %v", cfg.UsersTable, err)
	}

	userRepo := repository.NewUserRepository(db, cfg.UsersTable)
	groupRepo := repository.NewGroupRepository(db, cfg.GroupsTable)
	userService := service.NewUserService(*userRepo)
	groupService := service.NewGroupService(*groupRepo)
	handler := api.NewHandler(*userService, *groupService)

	e := echo.New()
	e.Validator = api.NewValidator()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontOrigin},
	}))

	// Routes
	e.GET("/", handler.Root)
	e.GET("/api/users-groups", handler.ListUsersGroups)
	e.POST("/api/user", handler.CreateUser)
	e.POST("/api/group", handler.CreateGroup)
	e.PUT("/api/user/:id/marks", handler.UpdateUserMarks)
	e.DELETE("/api/user/:id", handler.DeleteUser)

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "user-group-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

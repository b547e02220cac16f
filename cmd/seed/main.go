package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kudoswall/kudos-wall-backend/config"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
)

var categories = []string{
	"Teamwork",
	"Innovation",
	"Leadership",
	"Ownership",
	"Customer Focus",
	"Going Above & Beyond",
	"Reliability",
	"Learning & Growth",
	"Communication",
	"Positive Attitude",
}

type seedUser struct {
	name     string
	email    string
	password string
	roleID   int
}

var users = []seedUser{
	{name: "Test Team Lead", email: "teamlead@test.com", password: "Password123!", roleID: 1},
	{name: "Test Member", email: "member@test.com", password: "Password123!", roleID: 2},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Ensure base roles exist with their fixed ids
	for _, r := range []struct {
		id   int
		name string
	}{{1, "TEAMLEAD"}, {2, "MEMBER"}} {
		if _, err := db.Exec(`
			INSERT INTO roles (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, r.id, r.name); err != nil {
			log.Fatalf("failed to upsert role %s: %v", r.name, err)
		}
	}
	fmt.Println("roles ensured: 1=TEAMLEAD 2=MEMBER")

	for _, name := range categories {
		if _, err := db.Exec(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to seed category %q: %v", name, err)
		}
	}
	fmt.Printf("seeded %d categories\n", len(categories))

	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (id, name, email, password_hash, is_email_verified, role_id)
			VALUES ($1, $2, $3, $4, TRUE, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role_id = EXCLUDED.role_id
			RETURNING id
		`, uuid.NewString(), u.name, u.email, hash, u.roleID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, u.email, u.password)
	}
}

package testhelpers

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

// PlaceFixture describes one seeded place row. Zero fields fall back to
// usable defaults so tests only spell out what they assert on.
type PlaceFixture struct {
	ID        string
	Name      string
	Address   *string
	District  *string
	Category  string
	CreatorID string
	CreatedAt time.Time
}

// SeedPlace inserts a place row directly, bypassing the repository.
func SeedPlace(t *testing.T, db *sqlx.DB, f PlaceFixture) {
	t.Helper()

	if f.Name == "" {
		f.Name = "Place " + f.ID
	}
	if f.Category == "" {
		f.Category = "meal"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(`
		INSERT INTO places (id, name, lat, lon, address, district, description, link,
		                    category, creator_id, created_at, updated_at)
		VALUES ($1, $2, 0, 0, $3, $4, '', NULL, $5, $6, $7, $7)
	`, f.ID, f.Name, f.Address, f.District, f.Category, f.CreatorID, f.CreatedAt)
	if err != nil {
		t.Fatalf("seed place %s: %v", f.ID, err)
	}
}

// RouteFixture describes one seeded route row.
type RouteFixture struct {
	ID         string
	Name       string
	DistrictID *string
	CreatorID  string
	CreatedAt  time.Time
}

// SeedRoute inserts a route row directly, bypassing the repository.
func SeedRoute(t *testing.T, db *sqlx.DB, f RouteFixture) {
	t.Helper()

	if f.Name == "" {
		f.Name = "Route " + f.ID
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(`
		INSERT INTO routes (id, name, description, district_id, creator_id, created_at, updated_at)
		VALUES ($1, $2, '', $3, $4, $5, $5)
	`, f.ID, f.Name, f.DistrictID, f.CreatorID, f.CreatedAt)
	if err != nil {
		t.Fatalf("seed route %s: %v", f.ID, err)
	}
}

// SeedStop inserts a route stop row referencing existing route and place rows.
func SeedStop(t *testing.T, db *sqlx.DB, id, routeID, placeID string, order int, label string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO route_stops (id, route_id, place_id, stop_order, label)
		VALUES ($1, $2, $3, $4, $5)
	`, id, routeID, placeID, order, label)
	if err != nil {
		t.Fatalf("seed stop %s: %v", id, err)
	}
}

// SeedPlaceLike inserts a like row targeting a place.
func SeedPlaceLike(t *testing.T, db *sqlx.DB, id, userID, placeID string, at time.Time) {
	t.Helper()

	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := db.Exec(`
		INSERT INTO likes (id, user_id, place_id, route_id, created_at)
		VALUES ($1, $2, $3, NULL, $4)
	`, id, userID, placeID, at)
	if err != nil {
		t.Fatalf("seed place like %s: %v", id, err)
	}
}

// SeedRouteLike inserts a like row targeting a route.
func SeedRouteLike(t *testing.T, db *sqlx.DB, id, userID, routeID string, at time.Time) {
	t.Helper()

	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := db.Exec(`
		INSERT INTO likes (id, user_id, place_id, route_id, created_at)
		VALUES ($1, $2, NULL, $3, $4)
	`, id, userID, routeID, at)
	if err != nil {
		t.Fatalf("seed route like %s: %v", id, err)
	}
}

// SeedFollow inserts a follow edge directly.
func SeedFollow(t *testing.T, db *sqlx.DB, followerID, followingID string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, $3)
	`, followerID, followingID, time.Now().UTC())
	if err != nil {
		t.Fatalf("seed follow %s -> %s: %v", followerID, followingID, err)
	}
}

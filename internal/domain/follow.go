package domain

import "time"

// Follow is a directed edge in the follow graph, used only to project a
// personalized feed of places created by followed users.
type Follow struct {
	FollowerID  string    `json:"follower_id" db:"follower_id"`
	FollowingID string    `json:"following_id" db:"following_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

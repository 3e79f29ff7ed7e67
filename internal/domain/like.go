package domain

import "time"

// Like is the fact "user U likes target T". Exactly one of PlaceID /
// RouteID is non-null in the persisted row; application code only ever
// handles the target through the LikeTarget sum type.
type Like struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	PlaceID   *string   `json:"place_id,omitempty" db:"place_id"`
	RouteID   *string   `json:"route_id,omitempty" db:"route_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LikeTargetKind discriminates the two likeable entity types.
type LikeTargetKind string

const (
	LikeTargetPlace LikeTargetKind = "place"
	LikeTargetRoute LikeTargetKind = "route"
)

// LikeTarget is a tagged union over "a place" or "a route". The zero
// value is invalid; values are built only through PlaceTarget and
// RouteTarget, so "both set" and "neither set" are unrepresentable.
type LikeTarget struct {
	kind LikeTargetKind
	id   string
}

func PlaceTarget(id string) LikeTarget {
	return LikeTarget{kind: LikeTargetPlace, id: id}
}

func RouteTarget(id string) LikeTarget {
	return LikeTarget{kind: LikeTargetRoute, id: id}
}

func (t LikeTarget) Kind() LikeTargetKind { return t.kind }
func (t LikeTarget) ID() string           { return t.id }

// IsZero reports whether the target was never populated.
func (t LikeTarget) IsZero() bool { return t.kind == "" }

// LikeInfo is the per-target aggregate returned to viewers.
type LikeInfo struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

// LikeEvent is published to the like stream after a toggle commits, so
// background consumers can invalidate derived listings.
type LikeEvent struct {
	UserID     string         `json:"user_id"`
	TargetKind LikeTargetKind `json:"target_kind"`
	TargetID   string         `json:"target_id"`
	Liked      bool           `json:"liked"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// StreamLikeEvents is the Redis stream carrying LikeEvents.
const StreamLikeEvents = "stream:likes:events"

// StreamMessage is a raw message read from a stream consumer group.
type StreamMessage struct {
	ID   string
	Data string
}

package domain

import "time"

// Tweet is an owned resource. UserID is set once at creation and never
// transferred; every delete is constrained to (id, owner).
type Tweet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

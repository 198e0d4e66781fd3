package domain

import "time"

const (
	RoleBasic = "BASIC"
	RoleAdmin = "ADMIN"
)

// Role is one entry of the closed role catalog. Roles are looked up by name
// and never created by this service at runtime.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User models an authenticated actor in the system. The ID is a UUID assigned
// once at registration and is the only identity reference embedded in tokens;
// usernames are unique but mutable in principle, so they never become a token
// subject.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// RoleNames returns the names of the user's roles in catalog order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

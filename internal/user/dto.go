package user

import (
	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/auth"
)

// Profile is the caller's account as seen by the client. Role comes from the verified token, which
// is what every route authorizes against.
type Profile struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	IsAdmin bool      `json:"is_admin"`
	Home    string    `json:"home"`
}

func ToProfile(u *User, identity auth.Identity) Profile {
	home := "/dashboard"
	if identity.IsAdmin() {
		home = "/admin"
	}
	return Profile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    identity.Role,
		IsAdmin: identity.IsAdmin(),
		Home:    home,
	}
}

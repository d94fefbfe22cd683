package serializer

import (
	"github.com/mdouchement/checklist/internal/model"
)

// User renders the public fields of the given user.
// The password verifier never leaves the server.
func User(u *model.User) M {
	return M{
		"uuid":       u.UUID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"status":     u.Status,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

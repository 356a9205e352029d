package profile

import "time"

// Profile is a stored author profile row. The password hash never
// leaves the package.
type Profile struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Role         string    `db:"role" json:"role"`
	Bio          *string   `db:"bio" json:"bio"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UpdateProfileRequest is the payload for profile edits.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// FormState is the mutation response shape: error is null on success.
type FormState struct {
	Error   *string `json:"error"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}

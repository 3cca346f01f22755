package models

// User represents an account entity used for authentication and advert
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries: the password column holds a bcrypt hash and is excluded
// from JSON, so marshaling a User yields the public projection
// {id, name, email}.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	// Immutable once assigned.
	ID int64 `json:"id"`

	// Name is the display name of the user. Required, non-empty.
	Name string `json:"name"`

	// Email is the globally unique user identifier used during
	// authentication. Uniqueness is enforced by the store.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	// It is never exposed via JSON.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate represents a partial update of a single user record.
// Only non-nil fields will be updated.
type UserUpdate struct {
	// ID is the unique identifier of the user to update. Required.
	ID int64 `json:"-"`

	// Name is the updated display name. If nil, the field is left untouched.
	Name *string `json:"name,omitempty"`

	// Email is the updated email. If nil, the field is left untouched.
	Email *string `json:"email,omitempty"`

	// Password is the updated password. Carries the plaintext on the way in;
	// the service layer replaces it with a bcrypt hash before the update
	// reaches the store. If nil, the field is left untouched.
	Password *string `json:"password,omitempty"`
}

// HasChanges reports whether the patch sets at least one field.
func (u UserUpdate) HasChanges() bool {
	return u.Name != nil || u.Email != nil || u.Password != nil
}

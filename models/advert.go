package models

import "time"

// Advert represents a classified advert owned by a single user.
// Marshaling an Advert yields the full projection
// {id, title, description, creation_date, owner_id}; CreationDate is
// rendered in RFC 3339 by encoding/json.
type Advert struct {
	// ID is the store-assigned unique identifier of the advert.
	// Immutable once assigned.
	ID int64 `json:"id"`

	// Title is the advert headline. Required, non-empty.
	Title string `json:"title"`

	// Description is the advert body. Required, non-empty.
	Description string `json:"description"`

	// CreationDate is set server-side when the advert is created and is
	// immutable thereafter.
	CreationDate time.Time `json:"creation_date"`

	// OwnerID references the owning user. Set once at creation and not
	// reassignable via update.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Advert model.
func (a Advert) TableName() string {
	return "adverts"
}

// AdvertUpdate represents a partial update of a single advert record.
// Only non-nil fields will be updated; OwnerID and CreationDate are
// immutable and have no counterpart here.
type AdvertUpdate struct {
	// ID is the unique identifier of the advert to update. Required.
	ID int64 `json:"-"`

	// Title is the updated headline. If nil, the field is left untouched.
	Title *string `json:"title,omitempty"`

	// Description is the updated body. If nil, the field is left untouched.
	Description *string `json:"description,omitempty"`
}

// HasChanges reports whether the patch sets at least one field.
func (a AdvertUpdate) HasChanges() bool {
	return a.Title != nil || a.Description != nil
}

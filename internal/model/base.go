package model

import (
	"time"
)

type (
	// A Model defines an object that can be stored in database.
	Model interface {
		// GetID returns the model's internal ID.
		GetID() int
		// GetUUID returns the model's public identifier.
		GetUUID() string
		// SetUUID defines the model's public identifier.
		SetUUID(string)
		// GetCreatedAt returns the model's creation date.
		GetCreatedAt() *time.Time
		// SetCreatedAt defines the model's creation date.
		SetCreatedAt(time.Time)
		// GetUpdatedAt returns the model's last update date.
		GetUpdatedAt() *time.Time
		// SetUpdatedAt defines the model's last update date.
		SetUpdatedAt(time.Time)
	}

	// A Base contains the default model fields.
	// The integer ID is internal to the database while the UUID is the
	// identifier exposed to the other services.
	Base struct {
		ID        int        `json:"id"         msgpack:"id"         storm:"id,increment"`
		UUID      string     `json:"uuid"       msgpack:"uuid"       storm:"unique"`
		CreatedAt *time.Time `json:"created_at" msgpack:"created_at" storm:"index"`
		UpdatedAt *time.Time `json:"updated_at" msgpack:"updated_at" storm:"index"`
	}
)

// GetID returns the model's internal ID.
func (m *Base) GetID() int {
	return m.ID
}

// GetUUID returns the model's public identifier.
func (m *Base) GetUUID() string {
	return m.UUID
}

// SetUUID defines the model's public identifier.
func (m *Base) SetUUID(uuid string) {
	m.UUID = uuid
}

// GetCreatedAt returns the model's creation date.
func (m *Base) GetCreatedAt() *time.Time {
	return m.CreatedAt
}

// SetCreatedAt defines the model's creation date.
func (m *Base) SetCreatedAt(t time.Time) {
	m.CreatedAt = &t
}

// GetUpdatedAt returns the model's last update date.
func (m *Base) GetUpdatedAt() *time.Time {
	return m.UpdatedAt
}

// SetUpdatedAt defines the model's last update date.
func (m *Base) SetUpdatedAt(t time.Time) {
	m.UpdatedAt = &t
}

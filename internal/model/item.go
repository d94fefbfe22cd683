package model

// An Item represents a database record and the rendered API response.
// An item belongs to exactly one owner, bound at creation and never
// reassigned. Deletion is logical, the record is kept.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	OwnerUUID string `json:"user_uuid"    msgpack:"owner_uuid" storm:"index"`
	Content   string `json:"content"      msgpack:"content"`
	Completed bool   `json:"is_completed" msgpack:"completed"`
	Deleted   bool   `json:"is_deleted"   msgpack:"deleted"    storm:"index"`
}

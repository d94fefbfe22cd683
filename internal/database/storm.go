package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/pkg/errors"
)

// strm wraps a storm node so the same implementation serves both the
// root connection and a transaction.
type strm struct {
	db   *storm.DB
	node storm.Node
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.Init(&model.User{}); err != nil {
		return errors.Wrap(err, "could not init user index")
	}

	err = db.Init(&model.Item{})
	return errors.Wrap(err, "could not init item index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.ReIndex(&model.User{}); err != nil {
		return errors.Wrap(err, "could not ReIndex users")
	}

	err = db.ReIndex(&model.Item{})
	return errors.Wrap(err, "could not ReIndex items")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db:   db,
		node: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetUUID() == "" {
		m.SetUUID(uuid.Must(uuid.NewV4()).String())
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.node.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.node.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	if c.db == nil {
		// Transaction node, nothing to close.
		return nil
	}
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsAlreadyExists returns true if err is a unique constraint error.
func (c *strm) IsAlreadyExists(err error) bool {
	return errors.Cause(err) == storm.ErrAlreadyExists
}

// FindUser returns the user for the given uuid.
func (c *strm) FindUser(uuid string) (*model.User, error) {
	var user model.User
	if err := c.node.One("UUID", uuid, &user); err != nil {
		return nil, errors.Wrap(err, "find user by uuid")
	}
	return &user, nil
}

// FindUserByMail returns the user for the given email.
func (c *strm) FindUserByMail(email string) (*model.User, error) {
	var user model.User
	if err := c.node.One("Email", email, &user); err != nil {
		return nil, errors.Wrap(err, "find user by mail")
	}
	return &user, nil
}

// FindItemByOwner returns the item for the given internal id and owner uuid.
// The deleted flag is not filtered here, only listing hides deleted items.
func (c *strm) FindItemByOwner(id int, ownerUUID string) (*model.Item, error) {
	var item model.Item
	err := c.node.Select(q.Eq("ID", id), q.Eq("OwnerUUID", ownerUUID)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "find item by owner")
	}
	return &item, nil
}

// FindItemsByOwner returns all the non-deleted items of the given owner.
func (c *strm) FindItemsByOwner(ownerUUID string) ([]*model.Item, error) {
	items := make([]*model.Item, 0)
	err := c.node.Select(q.Eq("OwnerUUID", ownerUUID), q.Eq("Deleted", false)).OrderBy("CreatedAt").Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items by owner")
	}
	return items, nil
}

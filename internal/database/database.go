package database

import (
	"github.com/mdouchement/checklist/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsAlreadyExists returns true if err is a unique constraint error.
		IsAlreadyExists(err error) bool
		// RunInTransaction runs fn against tx when one is given.
		// Otherwise it opens a new transaction, runs fn against it and
		// commits on success or rolls back on failure. When tx is reused,
		// a failing fn only propagates its error; the caller owns the
		// rollback decision.
		RunInTransaction(tx Client, fn func(tx Client) error) error

		UserInteraction
		ItemInteraction
	}

	// An UserInteraction defines all the methods used to interact with a user record.
	UserInteraction interface {
		// FindUser returns the user for the given uuid.
		FindUser(uuid string) (*model.User, error)
		// FindUserByMail returns the user for the given email.
		FindUserByMail(email string) (*model.User, error)
	}

	// An ItemInteraction defines all the methods used to interact with item record(s).
	ItemInteraction interface {
		// FindItemByOwner returns the item for the given internal id and
		// owner uuid. A missing id and a foreign owner are both reported
		// as not found.
		FindItemByOwner(id int, ownerUUID string) (*model.Item, error)
		// FindItemsByOwner returns all the non-deleted items of the given
		// owner, in creation order. It never fails on an empty result.
		FindItemsByOwner(ownerUUID string) ([]*model.Item, error)
	}
)

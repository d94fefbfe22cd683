package service

import (
	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/pkg/errors"
)

// Message presented on any ownership miss: a missing id and someone
// else's id must not be distinguishable.
const itemNotFoundMessage = "Todo not found or does not belong to the user"

type (
	// An ItemService handles the owner-scoped item lifecycle. Every
	// mutation re-fetches by (id, owner) before applying any change.
	// The re-fetch does not filter on the deleted flag, so a soft-deleted
	// item stays mutable; it is only hidden from listings.
	ItemService interface {
		// Create inserts a new incomplete item owned by ownerUUID.
		Create(content, ownerUUID string) (*model.Item, error)
		// List returns the owner's non-deleted items, in creation order.
		List(ownerUUID string) ([]*model.Item, error)
		// Update overwrites the item content.
		Update(id int, content, ownerUUID string) (*model.Item, error)
		// ToggleComplete sets the completion state. Idempotent.
		ToggleComplete(id int, ownerUUID string, completed bool) error
		// SoftDelete marks the item deleted. The completion state is left
		// untouched and the record persists.
		SoftDelete(id int, ownerUUID string) error
	}

	itemService struct {
		db database.Client
	}
)

// NewItem returns a new ItemService.
func NewItem(db database.Client) ItemService {
	return &itemService{db: db}
}

func (s *itemService) Create(content, ownerUUID string) (*model.Item, error) {
	item := &model.Item{
		OwnerUUID: ownerUUID,
		Content:   content,
	}

	if err := s.db.Save(item); err != nil {
		return nil, errors.Wrap(err, "could not persist item")
	}
	return item, nil
}

func (s *itemService) List(ownerUUID string) ([]*model.Item, error) {
	return s.db.FindItemsByOwner(ownerUUID)
}

func (s *itemService) Update(id int, content, ownerUUID string) (*model.Item, error) {
	item, err := s.fetch(id, ownerUUID)
	if err != nil {
		return nil, err
	}

	item.Content = content
	if err := s.db.Save(item); err != nil {
		return nil, errors.Wrap(err, "could not persist item")
	}
	return item, nil
}

func (s *itemService) ToggleComplete(id int, ownerUUID string, completed bool) error {
	item, err := s.fetch(id, ownerUUID)
	if err != nil {
		return err
	}

	item.Completed = completed
	return errors.Wrap(s.db.Save(item), "could not persist item")
}

func (s *itemService) SoftDelete(id int, ownerUUID string) error {
	item, err := s.fetch(id, ownerUUID)
	if err != nil {
		return err
	}

	item.Deleted = true
	return errors.Wrap(s.db.Save(item), "could not persist item")
}

// fetch is the ownership check ran before any mutation. Reading then
// writing is two round trips; concurrent writers race and the last one
// wins, there is no optimistic concurrency control.
func (s *itemService) fetch(id int, ownerUUID string) (*model.Item, error) {
	item, err := s.db.FindItemByOwner(id, ownerUUID)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, apierror.NotFound(itemNotFoundMessage)
		}
		return nil, errors.Wrap(err, "could not get access to database")
	}
	return item, nil
}

package database

import (
	"github.com/pkg/errors"
)

// RunInTransaction runs fn against tx when the caller already holds one,
// so several writes can be composed in a single unit of work. Otherwise a
// new transaction is opened around fn.
func (c *strm) RunInTransaction(tx Client, fn func(tx Client) error) error {
	if tx != nil {
		return fn(tx)
	}

	node, err := c.node.Begin(true)
	if err != nil {
		return errors.Wrap(err, "could not begin transaction")
	}

	if err := fn(&strm{node: node}); err != nil {
		if rerr := node.Rollback(); rerr != nil {
			return errors.Wrapf(err, "could not rollback transaction (%s)", rerr)
		}
		return err
	}

	return errors.Wrap(node.Commit(), "could not commit transaction")
}

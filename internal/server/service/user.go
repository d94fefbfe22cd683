package service

import (
	"context"

	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/mdouchement/checklist/internal/session"
	argon2 "github.com/mdouchement/simple-argon2"
	"github.com/pkg/errors"
)

type (
	// A UserService handles the account lifecycle and the credentials
	// exchange against the session subsystem.
	UserService interface {
		// Register creates a new identity. It fails with a conflict when
		// the email is already registered.
		Register(params RegisterParams) (*model.User, error)
		// Login verifies the credentials and issues a token. Unknown
		// email and wrong password are indistinguishable for the caller.
		Login(ctx context.Context, params LoginParams) (string, error)
		// Logout revokes the presented token.
		Logout(ctx context.Context, token string) error
	}

	// RegisterParams are used to register a user.
	RegisterParams struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	// LoginParams are used to login a user.
	LoginParams struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	userService struct {
		db       database.Client
		sessions session.Manager
	}
)

// NewUser returns a new UserService.
func NewUser(db database.Client, sessions session.Manager) UserService {
	return &userService{
		db:       db,
		sessions: sessions,
	}
}

func (s *userService) Register(params RegisterParams) (*model.User, error) {
	user := model.NewUser()

	// Uniqueness check and insert compose a single unit of work.
	err := s.db.RunInTransaction(nil, func(tx database.Client) error {
		existing, err := tx.FindUserByMail(params.Email)
		if err != nil && !tx.IsNotFound(err) {
			return errors.Wrap(err, "could not get access to database")
		}
		if existing != nil {
			return apierror.Conflict("Email already exists.")
		}

		user.FirstName = params.FirstName
		user.LastName = params.LastName
		user.Email = params.Email
		user.Password, err = argon2.GenerateFromPasswordString(params.Password, argon2.Default)
		if err != nil {
			return errors.Wrap(err, "could not store user password safe")
		}

		if err := tx.Save(user); err != nil {
			if tx.IsAlreadyExists(err) {
				return apierror.Conflict("Email already exists.")
			}
			return errors.Wrap(err, "could not persist user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := s.db.FindUserByMail(params.Email)
	if err != nil {
		if s.db.IsNotFound(err) {
			return "", apierror.Unauthenticated("Invalid credentials")
		}
		return "", errors.Wrap(err, "could not get user")
	}

	if err = argon2.CompareHashAndPasswordString(user.Password, params.Password); err != nil {
		if err == argon2.ErrMismatchedHashAndPassword {
			return "", apierror.Unauthenticated("Invalid credentials")
		}
		return "", errors.Wrap(err, "could not validate password")
	}

	return s.sessions.Issue(ctx, user.ID, user.UUID)
}

func (s *userService) Logout(ctx context.Context, token string) error {
	err := s.sessions.Revoke(ctx, token)
	if err == session.ErrNotFound {
		// The entry vanished between the gate check and the revocation.
		return apierror.InvalidToken()
	}
	return err
}

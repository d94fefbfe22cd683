package server_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/appleboy/gofight/v2"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/mdouchement/checklist/internal/server"
	"github.com/mdouchement/checklist/internal/session"
	argon2 "github.com/mdouchement/simple-argon2"
	"github.com/stretchr/testify/assert"
)

type environment struct {
	ctrl  server.IOC
	redis *miniredis.Miniredis
}

func TestRequestVersion(t *testing.T) {
	engine, _, r := setup(t)

	r.GET("/version").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"version":"test"}`, r.Body.String())
	})
}

func setup(t *testing.T) (*echo.Echo, environment, *gofight.RequestConfig) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "checklist.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	if err != nil {
		panic(err)
	}

	mr := miniredis.RunT(t)
	store, err := session.NewRedisStore("redis://" + mr.Addr())
	if err != nil {
		panic(err)
	}

	ctrl := server.IOC{
		Version:  "test",
		Database: db,
		Sessions: session.NewManager(store, []byte("secret")),
	}

	t.Cleanup(func() {
		store.Close()
		db.Close()
		os.RemoveAll(filename)
	})

	return server.EchoEngine(ctrl), environment{ctrl: ctrl, redis: mr}, gofight.New()
}

func createUser(env environment, email string) *model.User {
	var err error

	user := model.NewUser()
	user.FirstName = "George"
	user.LastName = "Abitbol"
	user.Email = email
	user.Password, err = argon2.GenerateFromPasswordString("password42", argon2.Default)
	if err != nil {
		panic(err)
	}

	if err = env.ctrl.Database.Save(user); err != nil {
		panic(err)
	}
	return user
}

func issueToken(env environment, user *model.User) string {
	token, err := env.ctrl.Sessions.Issue(context.Background(), user.ID, user.UUID)
	if err != nil {
		panic(err)
	}
	return token
}

func createItem(env environment, ownerUUID, content string) *model.Item {
	item := &model.Item{
		OwnerUUID: ownerUUID,
		Content:   content,
	}
	if err := env.ctrl.Database.Save(item); err != nil {
		panic(err)
	}
	return item
}

func bearer(token string) gofight.H {
	return gofight.H{"Authorization": "Bearer " + token}
}

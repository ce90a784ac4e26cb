package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"blogapp/internal/dto"
	"blogapp/internal/models"
	"blogapp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t))

	resp, raw := doRequest(t, app, http.MethodPost, "/api/users/addUser", dto.UserDTO{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
		About:    "Gopher",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	user := decode[dto.UserDTO](t, raw)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)

	resp, raw = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/users/getUserById/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, user, decode[dto.UserDTO](t, raw))
}

func TestCreateUser_InvalidFields(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))

	resp, raw := doRequest(t, app, http.MethodPost, "/api/users/addUser", dto.UserDTO{
		Name:     "Bob",
		Email:    "not-an-email",
		Password: "secret",
		About:    "nothing",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[models.ExceptionResponse](t, raw)
	assert.Equal(t, "Validation Fails", body.Message)
	assert.Equal(t, "Bad Request", body.HTTPCodeMessage)
	assert.Contains(t, body.Details, "name:User name must be greater than 4 characters.")
	assert.Contains(t, body.Details, "email:Email is not valid!.")
	assert.Equal(t, 2, strings.Count(body.Details, "."), "exactly two field errors")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t))

	req := strings.NewReader("{not json")
	resp, raw := send(t, app, newJSONRequest(http.MethodPost, "/api/users/addUser", req))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", decode[models.ExceptionResponse](t, raw).Details)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))
	testutil.CreateUser(t, db, "carol")

	resp, raw := doRequest(t, app, http.MethodPost, "/api/users/addUser", dto.UserDTO{
		Name:     "Carol Again",
		Email:    "carol@example.com",
		Password: "secret",
		About:    "twin",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email:Email is already registered.", decode[models.ExceptionResponse](t, raw).Details)
}

func TestUpdateAndListUsers(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))
	dave := testutil.CreateUser(t, db, "dave")
	testutil.CreateUser(t, db, "erin")

	resp, raw := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/users/updateUser/%d", dave.ID), dto.UserDTO{
		Name:     "David",
		Email:    "david@example.com",
		Password: "changed",
		About:    "renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "David", decode[dto.UserDTO](t, raw).Name)

	resp, raw = doRequest(t, app, http.MethodGet, "/api/users/getAllUsers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	users := decode[[]dto.UserDTO](t, raw)
	require.Len(t, users, 2)
	assert.Equal(t, "david@example.com", users[0].Email)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/users/updateUser/999", dto.UserDTO{
		Name: "Nobody", Email: "nobody@example.com", Password: "x", About: "x",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetUsersByEmail(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))
	testutil.CreateUser(t, db, "frank")

	resp, raw := doRequest(t, app, http.MethodGet, "/api/users/getUsersByEmail/frank@example.com?pageSize=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	page := decode[dto.UserPage](t, raw)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.True(t, page.LastPage)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "frank", page.Users[0].Name)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/users/getUsersByEmail/frank@example.com?pageSize=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))
	user := testutil.CreateUser(t, db, "grace")
	category := testutil.CreateCategory(t, db, "Travel")
	post := testutil.CreatePost(t, db, user, category, "Oslo")
	testutil.CreateComment(t, db, post, "cold")

	resp, raw := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/users/deleteUser/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("User with id %d deleted successfully!!", user.ID), string(raw))

	resp, raw = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/post/category/%d", category.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.PostDTO](t, raw))

	resp, raw = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/users/deleteUser/%d", user.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("User with given id %d not found!", user.ID), string(raw))
}

func TestGetUsersByEmail_PageOverflow(t *testing.T) {
	app, db := newTestApp(t, testConfig(t))
	testutil.CreateUser(t, db, "gina")

	resp, raw := doRequest(t, app, http.MethodGet, "/api/users/getUsersByEmail/gina@example.com?pageNumber=3074457345618258603&pageSize=3", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "pageNumber:is too large for the page size.", decode[models.ExceptionResponse](t, raw).Details)
}

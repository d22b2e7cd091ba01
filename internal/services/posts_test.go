package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
)

func TestPostsSearchBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/search", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "aula", q.Get("search"))
		assert.Equal(t, "react", q.Get("tag"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "createdAt", q.Get("sortBy"))
		assert.Equal(t, "desc", q.Get("sortOrder"))
		assert.Empty(t, q.Get("authorId"), "empty filters must be omitted")

		_, _ = w.Write([]byte(`{
			"data":[{"id":"p1","title":"Aula 1","authorId":"t1"}],
			"pagination":{"page":2,"limit":10,"total":11,"totalPages":2}
		}`))
	}))
	defer srv.Close()

	posts := NewPosts(api.New(srv.URL))

	res, err := posts.Search(context.Background(), models.PostSearchParams{
		Search:    "aula",
		Tag:       "react",
		Page:      2,
		Limit:     10,
		SortBy:    "createdAt",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "p1", res.Data[0].ID)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestPostsCRUD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/posts/mine":
			_, _ = w.Write([]byte(`{"data":[{"id":"p2","title":"Minha aula","authorId":"t1"}]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/posts/p2":
			_, _ = w.Write([]byte(`{"data":{"id":"p2","title":"Minha aula","authorId":"t1"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/posts":
			var payload models.CreatePostPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, []string{"go", "web"}, payload.Tags)

			_, _ = w.Write([]byte(`{"data":{"id":"p3","title":"` + payload.Title + `","authorId":"t1"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/posts/p3":
			_, _ = w.Write([]byte(`{"data":{"id":"p3","title":"Editada","authorId":"t1"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/posts/p3":
			_, _ = w.Write([]byte(`{"data":{"id":"p3"}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/posts/authors":
			_, _ = w.Write([]byte(`{"data":[{"id":"t1","name":"Ana"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	posts := NewPosts(api.New(srv.URL))
	ctx := context.Background()

	mine, err := posts.Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine.Data, 1)

	post, err := posts.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "t1", post.OwnerID())

	created, err := posts.Create(ctx, models.CreatePostPayload{Title: "Nova", Content: "Conteúdo", Tags: []string{"go", "web"}})
	require.NoError(t, err)
	assert.Equal(t, "p3", created.ID)

	updated, err := posts.Update(ctx, "p3", models.UpdatePostPayload{Title: "Editada"})
	require.NoError(t, err)
	assert.Equal(t, "Editada", updated.Title)

	require.NoError(t, posts.Delete(ctx, "p3"))

	authors, err := posts.Authors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Ana", authors[0].Name)
}

func TestUsersCRUD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users/me":
			_, _ = w.Write([]byte(`{"data":{"id":"u1","name":"Ana","email":"ana@escola.br","role":"ADMIN"}}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/users/me":
			_, _ = w.Write([]byte(`{"data":{"id":"u1","name":"Ana Maria","email":"ana@escola.br","role":"ADMIN"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/users/me/password":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			_, _ = w.Write([]byte(`{"data":[{"id":"u2","name":"Rui","email":"rui@escola.br","role":"STUDENT"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/users":
			var payload models.CreateUserPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			_, _ = w.Write([]byte(`{"data":{"id":"u3","name":"` + payload.Name + `","email":"` + payload.Email + `","role":"` + string(payload.Role) + `"}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/users/u2":
			_, _ = w.Write([]byte(`{"data":{"id":"u2","name":"Rui","email":"rui@escola.br","role":"STUDENT"}}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/users/u2":
			_, _ = w.Write([]byte(`{"data":{"id":"u2","name":"Rui Costa","email":"rui@escola.br","role":"STUDENT"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/users/u2":
			_, _ = w.Write([]byte(`{"data":null}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	users := NewUsers(api.New(srv.URL))
	ctx := context.Background()

	me, err := users.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)

	updated, err := users.UpdateMe(ctx, models.UpdateUserPayload{Name: "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)

	require.NoError(t, users.ChangeMyPassword(ctx, models.ChangePasswordPayload{
		CurrentPassword: "antiga-senha",
		NewPassword:     "nova-senha-89",
	}))

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	created, err := users.Create(ctx, models.CreateUserPayload{
		Name: "Bia", Username: "bia", Email: "bia@escola.br", Password: "12345678", Role: "TEACHER",
	})
	require.NoError(t, err)
	assert.Equal(t, "u3", created.ID)

	got, err := users.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Rui", got.Name)

	patched, err := users.Update(ctx, "u2", models.UpdateUserPayload{Name: "Rui Costa"})
	require.NoError(t, err)
	assert.Equal(t, "Rui Costa", patched.Name)

	require.NoError(t, users.Delete(ctx, "u2"))
}

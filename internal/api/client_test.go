package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInjectsBearerToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-123")

	err := client.Get(context.Background(), "/users/me", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	client.SetToken("")

	err = client.Get(context.Background(), "/users/me", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok","data":{"id":"p1","title":"Aula 1"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	var out struct {
		Status string `json:"status"`
		Data   struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}

	err := client.Get(context.Background(), "/posts/p1", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "p1", out.Data.ID)
	assert.Equal(t, "Aula 1", out.Data.Title)
}

func TestClientSendsQueryAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "react", r.URL.Query().Get("tag"))
		case http.MethodPost:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Aula 2", body["title"])
		}

		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	query := url.Values{}
	query.Set("tag", "react")
	require.NoError(t, client.Get(context.Background(), "/posts/search", query, nil))

	require.NoError(t, client.Post(context.Background(), "/posts", map[string]string{"title": "Aula 2"}, nil))
}

func TestClientUnauthorizedTriggersHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"token expirado"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	var cleared bool

	client.SetUnauthorizedHandler(func() { cleared = true })

	err := client.Get(context.Background(), "/posts/mine", nil, nil)
	require.Error(t, err)
	assert.True(t, cleared, "401 must invoke the unauthorized handler")
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expirado")
}

func TestClientErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := New(srv.URL)

	err := client.Get(context.Background(), "/posts", nil, nil)
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "500")
}

func TestIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL)

	err := client.Get(context.Background(), "/posts/missing", nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

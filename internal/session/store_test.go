package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
)

func TestStoreSetAndClear(t *testing.T) {
	store := NewStore()

	assert.Nil(t, store.CurrentUser())
	assert.Empty(t, store.Token())
	assert.False(t, store.Authenticated())

	store.Set(rbac.AuthUser{ID: "u1", Name: "Ana", Role: rbac.RoleTeacher}, "tok-1")

	user := store.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-1", store.Token())
	assert.True(t, store.Authenticated())

	store.Clear()
	assert.Nil(t, store.CurrentUser())
	assert.Empty(t, store.Token())
	assert.False(t, store.Authenticated())
}

func TestStoreReplacesWholeValue(t *testing.T) {
	store := NewStore()

	original := rbac.AuthUser{ID: "u1", Name: "Ana", Role: rbac.RoleTeacher}
	store.Set(original, "tok")

	// mutating the caller's value must not affect the stored record
	original.Name = "changed"
	assert.Equal(t, "Ana", store.CurrentUser().Name)
}

func TestStoreSubscribe(t *testing.T) {
	store := NewStore()

	var got []*rbac.AuthUser

	cancel := store.Subscribe(func(u *rbac.AuthUser) {
		got = append(got, u)
	})

	store.Set(rbac.AuthUser{ID: "u1", Role: rbac.RoleAdmin}, "tok")
	store.Clear()

	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Nil(t, got[1])

	cancel()
	store.Set(rbac.AuthUser{ID: "u2", Role: rbac.RoleAdmin}, "tok")
	assert.Len(t, got, 2, "cancelled subscriber must not fire")
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			store.Set(rbac.AuthUser{ID: "u1", Name: "Ana", Role: rbac.RoleTeacher}, "tok")
		}()

		go func() {
			defer wg.Done()

			// a concurrent read sees either nil or a complete record
			if u := store.CurrentUser(); u != nil {
				assert.Equal(t, "u1", u.ID)
				assert.Equal(t, "Ana", u.Name)
			}
		}()
	}

	wg.Wait()
}

func TestNewStoreWith(t *testing.T) {
	store := NewStoreWith(rbac.AuthUser{ID: "u9", Role: rbac.RoleStudent}, "tok-9")

	assert.True(t, store.Authenticated())
	assert.Equal(t, "u9", store.CurrentUser().ID)
	assert.Equal(t, "tok-9", store.Token())
}

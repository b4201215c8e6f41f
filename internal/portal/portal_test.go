package portal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsAsUser(t *testing.T) {
	assert.Equal(t, RoleUser, NewStore().Role())
}

func TestToggleIsInvolutive(t *testing.T) {
	for _, start := range []Role{RoleUser, RoleAdmin} {
		s := NewStore()
		s.Set(start)

		assert.Equal(t, start.Other(), s.Toggle())
		assert.Equal(t, start, s.Toggle())
		assert.Equal(t, start, s.Role())
	}
}

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := s.Subscribe(ctx)

	s.Set(RoleUser)
	s.Set(RoleAdmin)

	select {
	case role := <-events:
		assert.Equal(t, RoleAdmin, role)
	case <-time.After(time.Second):
		t.Fatal("expected a role change event")
	}

	select {
	case role := <-events:
		t.Fatalf("unexpected event %q", role)
	default:
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = s.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*4; i++ {
			s.Toggle()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("toggle blocked on a full subscriber")
	}
}

func TestSubscriptionEndsWithContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	events := s.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestSubscribeAfterCloseIsClosed(t *testing.T) {
	s := NewStore()
	s.Close()
	_, ok := <-s.Subscribe(context.Background())
	assert.False(t, ok)
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()
	r.For("a").Toggle()

	assert.Equal(t, RoleAdmin, r.For("a").Role())
	assert.Equal(t, RoleUser, r.For("b").Role())
	assert.Equal(t, 2, r.Len())

	assert.ElementsMatch(t, []string{"a", "b"}, r.Sessions())

	r.Forget("a")
	assert.Equal(t, []string{"b"}, r.Sessions())
	assert.Equal(t, RoleUser, r.For("a").Role())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("root")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestNavItems(t *testing.T) {
	user := NavItems(RoleUser)
	require.Len(t, user, 4)
	assert.Equal(t, "Dashboard", user[0].Label)

	admin := NavItems(RoleAdmin)
	require.Len(t, admin, 5)
	assert.Equal(t, "/admin/notifications", admin[4].Href)

	user[0].Label = "changed"
	assert.Equal(t, "Dashboard", NavItems(RoleUser)[0].Label)
}

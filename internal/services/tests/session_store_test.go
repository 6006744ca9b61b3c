package services_test

import (
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SubscriberSeesCurrentStateImmediately(t *testing.T) {
	store := services.NewSessionStore()

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	// A fresh store is signed out.
	assert.Nil(t, <-ch)

	store.Publish(&services.Identity{UserID: "seeker-1", Role: models.RoleJobSeeker})

	got := <-ch
	require.NotNil(t, got)
	assert.Equal(t, "seeker-1", got.UserID)
}

func TestSessionStore_LateSubscriberSeesExistingSession(t *testing.T) {
	store := services.NewSessionStore()
	store.Publish(&services.Identity{UserID: "employer-1", Role: models.RoleEmployer})

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	got := <-ch
	require.NotNil(t, got)
	assert.Equal(t, "employer-1", got.UserID)
}

func TestSessionStore_SignOutDeliversNil(t *testing.T) {
	store := services.NewSessionStore()
	store.Publish(&services.Identity{UserID: "seeker-1"})

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()
	<-ch // drain the sign-in

	store.Publish(nil)

	assert.Nil(t, <-ch)
	assert.Nil(t, store.Current())
}

// An unconsumed value is replaced, not queued: a slow subscriber observes only
// the latest identity.
func TestSessionStore_SlowSubscriberGetsLatestOnly(t *testing.T) {
	store := services.NewSessionStore()

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	store.Publish(&services.Identity{UserID: "first"})
	store.Publish(&services.Identity{UserID: "second"})
	store.Publish(&services.Identity{UserID: "third"})

	got := <-ch
	require.NotNil(t, got)
	assert.Equal(t, "third", got.UserID)

	select {
	case extra, ok := <-ch:
		if ok {
			t.Fatalf("expected no queued values, got %+v", extra)
		}
	default:
	}
}

func TestSessionStore_UnsubscribeClosesChannelAndStopsDelivery(t *testing.T) {
	store := services.NewSessionStore()

	ch, unsubscribe := store.Subscribe()
	<-ch
	unsubscribe()

	// Publishing after unsubscribe must not panic on a closed channel.
	store.Publish(&services.Identity{UserID: "seeker-1"})

	_, ok := <-ch
	assert.False(t, ok)

	// Calling unsubscribe twice is a no-op.
	unsubscribe()
}

func TestSessionStore_MultipleSubscribersAllNotified(t *testing.T) {
	store := services.NewSessionStore()

	chA, unsubA := store.Subscribe()
	defer unsubA()
	chB, unsubB := store.Subscribe()
	defer unsubB()
	<-chA
	<-chB

	store.Publish(&services.Identity{UserID: "seeker-1"})

	gotA := <-chA
	gotB := <-chB
	require.NotNil(t, gotA)
	require.NotNil(t, gotB)
	assert.Equal(t, gotA.UserID, gotB.UserID)
}

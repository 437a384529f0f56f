package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListConversationsLatestWinsAcrossDirections(t *testing.T) {
	SetupTestDB()

	alice := createUser("alice")
	bob := createUser("bob")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	createMessage(alice.ID, bob.ID, "hi", base)
	createMessage(bob.ID, alice.ID, "hey", base.Add(5*time.Second))
	createMessage(alice.ID, bob.ID, "bye", base.Add(10*time.Second))

	convs, err := ListConversations(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 1)

	assert.Equal(t, bob.ID, convs[0].Partner.ID)
	assert.Equal(t, "bob", convs[0].Partner.Username)
	assert.Equal(t, "bye", convs[0].LastMessage.Content)
	assert.Equal(t, "sent", convs[0].Direction)

	// Bob sees the same conversation from the other side.
	convs, err = ListConversations(bob.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Equal(t, alice.ID, convs[0].Partner.ID)
	assert.Equal(t, "bye", convs[0].LastMessage.Content)
	assert.Equal(t, "received", convs[0].Direction)
}

func TestListConversationsReceivedLatest(t *testing.T) {
	SetupTestDB()

	alice := createUser("alice")
	bob := createUser("bob")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	createMessage(alice.ID, bob.ID, "ping", base)
	createMessage(bob.ID, alice.ID, "pong", base.Add(time.Minute))

	convs, err := ListConversations(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Equal(t, "pong", convs[0].LastMessage.Content)
	assert.Equal(t, "received", convs[0].Direction)
}

func TestListConversationsOrderedByRecency(t *testing.T) {
	SetupTestDB()

	me := createUser("me")
	old := createUser("old_friend")
	recent := createUser("recent_friend")
	stranger := createUser("stranger")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	createMessage(old.ID, me.ID, "long ago", base.Add(-2*time.Hour))
	createMessage(me.ID, recent.ID, "just now", base.Add(-1*time.Minute))

	convs, err := ListConversations(me.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 2)

	assert.Equal(t, recent.ID, convs[0].Partner.ID)
	assert.Equal(t, old.ID, convs[1].Partner.ID)

	// No message exchanged with the stranger, so no entry for them.
	for _, conv := range convs {
		assert.NotEqual(t, stranger.ID, conv.Partner.ID)
	}
}

func TestListConversationsOnePerPartner(t *testing.T) {
	SetupTestDB()

	me := createUser("me")
	buddy := createUser("buddy")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		createMessage(me.ID, buddy.ID, "msg", base.Add(time.Duration(i)*time.Second))
		createMessage(buddy.ID, me.ID, "reply", base.Add(time.Duration(i)*time.Second+500*time.Millisecond))
	}

	convs, err := ListConversations(me.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Equal(t, "reply", convs[0].LastMessage.Content)
}

func TestListConversationsTimestampCollisionAcrossPartners(t *testing.T) {
	SetupTestDB()

	me := createUser("me")
	first := createUser("first")
	second := createUser("second")

	// Identical timestamps across independent partners: ordering must fall
	// back to the message id.
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	createMessage(first.ID, me.ID, "from first", at)
	createMessage(second.ID, me.ID, "from second", at)

	convs, err := ListConversations(me.ID)
	assert.NoError(t, err)
	assert.Len(t, convs, 2)

	// The later insert carries the greater id and sorts first.
	assert.Equal(t, second.ID, convs[0].Partner.ID)
	assert.Equal(t, first.ID, convs[1].Partner.ID)
}

func TestListConversationsNoMessages(t *testing.T) {
	SetupTestDB()

	loner := createUser("loner")

	convs, err := ListConversations(loner.ID)
	assert.NoError(t, err)
	assert.NotNil(t, convs)
	assert.Empty(t, convs)
}

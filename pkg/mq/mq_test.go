package mq

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberJoined struct {
	MemberID uint   `json:"member_id"`
	Name     string `json:"name"`
}

func TestNewPublishing(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	msg, err := NewPublishing(memberJoined{MemberID: 7, Name: "userA"}, now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, now, msg.Timestamp)

	var decoded memberJoined
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, memberJoined{MemberID: 7, Name: "userA"}, decoded)
}

func TestNewPublishing_Unserializable(t *testing.T) {
	_, err := NewPublishing(math.Inf(1), time.Now())
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "member.joined", memberJoined{}))
	assert.NoError(t, p.Close())
}

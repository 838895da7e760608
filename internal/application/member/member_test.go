package member

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb/rdbtest"
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return nil
}

func newService(t *testing.T) (member.Service, *recordingPublisher) {
	t.Helper()
	db := rdbtest.Open(t)
	pub := &recordingPublisher{}
	return member.NewService(db.Repos().Members, pub), pub
}

func TestJoinAndList(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	join := NewJoinMemberUseCase(svc)
	res, err := join.Execute(ctx, JoinMemberRequest{Name: "userA", Address: address.New("Seoul", "1", "1111")})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)

	_, err = join.Execute(ctx, JoinMemberRequest{Name: "userA"})
	assert.ErrorIs(t, err, member.ErrDuplicateMember)

	_, err = join.Execute(ctx, JoinMemberRequest{Name: "  "})
	assert.ErrorIs(t, err, member.ErrEmptyName)

	list := NewListMembersUseCase(svc)
	summaries, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []MemberSummary{{Name: "userA"}}, summaries)

	entities, err := list.Entities(ctx)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Seoul", entities[0].Address.City)

	assert.Equal(t, []string{member.RoutingKeyJoined}, pub.keys)
}

func TestUpdate_CommandThenQuery(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	joined, err := NewJoinMemberUseCase(svc).Execute(ctx, JoinMemberRequest{Name: "before"})
	require.NoError(t, err)

	update := NewUpdateMemberUseCase(svc)
	res, err := update.Execute(ctx, UpdateMemberRequest{ID: joined.ID, Name: "after"})
	require.NoError(t, err)
	assert.Equal(t, &UpdateMemberResponse{ID: joined.ID, Name: "after"}, res)
	assert.Equal(t, []string{member.RoutingKeyJoined, member.RoutingKeyUpdated}, pub.keys)

	_, err = update.Execute(ctx, UpdateMemberRequest{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

package implementation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/pkg/testutil"
	"ai-council-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCouncil(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entity.Council {
	t.Helper()
	custom := "be terse"
	c := &entity.Council{
		UserId:      userID,
		Name:        name,
		Description: "A council for testing the repository layer",
		Seats: [4]entity.CouncilSeat{
			{AgentId: "agent-coder", CustomPrompt: &custom},
			{AgentId: "agent-debugger"},
			{AgentId: "agent-writer"},
			{AgentId: "agent-researcher"},
		},
	}
	require.NoError(t, NewCouncilRepository(db).Create(context.Background(), c))
	return c
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewSQLite(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entity.User{Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.Id)
	assert.Equal(t, entity.TierFree, u.SubscriptionTier)

	found, err := repo.FindOne(ctx, specification.ByEmail{Email: "a@example.com"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.Id, found.Id)

	missing, err := repo.FindOne(ctx, specification.ByEmail{Email: "b@example.com"})
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.Create(ctx, &entity.User{Email: "a@example.com", PasswordHash: "x"}))
}

func TestCouncilRepositoryRoundTripAndCounts(t *testing.T) {
	db := testutil.NewSQLite(t)
	ctx := context.Background()
	owner := uuid.New()

	c := seedCouncil(t, db, owner, "First")
	other := seedCouncil(t, db, owner, "Second")
	seedCouncil(t, db, uuid.New(), "Someone else's")

	msgs := NewMessageRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, msgs.Create(ctx, &entity.Message{CouncilId: c.Id, Role: entity.MessageRoleUser, Content: "hi"}))
	}

	found, err := NewCouncilRepository(db).FindOne(ctx, specification.ByID{ID: c.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.CouncilStatusActive, found.Status)
	assert.Equal(t, []string{"agent-coder", "agent-debugger", "agent-writer", "agent-researcher"}, found.AgentIds())
	require.NotNil(t, found.Seats[0].CustomPrompt)
	assert.Equal(t, "be terse", *found.Seats[0].CustomPrompt)
	assert.Nil(t, found.Seats[1].CustomPrompt)

	list, err := NewCouncilRepository(db).FindAllWithMessageCount(ctx,
		specification.UserOwnedBy{UserID: owner},
		specification.OrderBy{Field: "name", Desc: false},
	)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c.Id, list[0].Id)
	assert.Equal(t, int64(3), list[0].MessageCount)
	assert.Equal(t, other.Id, list[1].Id)
	assert.Equal(t, int64(0), list[1].MessageCount)
}

func TestCouncilRepositoryTouch(t *testing.T) {
	db := testutil.NewSQLite(t)
	ctx := context.Background()
	c := seedCouncil(t, db, uuid.New(), "Touched")
	before := c.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, NewCouncilRepository(db).Touch(ctx, c.Id))

	found, err := NewCouncilRepository(db).FindOne(ctx, specification.ByID{ID: c.Id})
	require.NoError(t, err)
	assert.True(t, found.UpdatedAt.After(before))
}

func TestMessageRepositoryFindRecent(t *testing.T) {
	db := testutil.NewSQLite(t)
	ctx := context.Background()
	c := seedCouncil(t, db, uuid.New(), "Chatty")
	repo := NewMessageRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Message{
			CouncilId: c.Id,
			Role:      entity.MessageRoleUser,
			Content:   fmt.Sprintf("m%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	recent, err := repo.FindRecent(ctx, c.Id, 20)
	require.NoError(t, err)
	require.Len(t, recent, 20)
	assert.Equal(t, "m05", recent[0].Content)
	assert.Equal(t, "m24", recent[19].Content)

	none, err := repo.FindRecent(ctx, uuid.New(), 20)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	db := testutil.NewSQLite(t)
	ctx := context.Background()
	repo := NewMemoryRepository(db)
	owner := uuid.New()

	m := &entity.Memory{UserId: owner, Content: "I love hiking", Embedding: []float32{0.1, 0.2, 0.3}, Tags: []string{"outdoors"}}
	require.NoError(t, repo.Create(ctx, m))

	found, err := repo.FindOne(ctx, specification.ByID{ID: m.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "I love hiking", found.Content)
	assert.InDeltaSlice(t, []float32{0.1, 0.2, 0.3}, found.Embedding, 1e-6)
	assert.Equal(t, []string{"outdoors"}, found.Tags)

	found.Tags = nil
	require.NoError(t, repo.Update(ctx, found))
	again, err := repo.FindOne(ctx, specification.ByID{ID: m.Id})
	require.NoError(t, err)
	assert.Equal(t, []string{}, again.Tags)

	n, err := repo.Count(ctx, specification.UserOwnedBy{UserID: owner})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, m.Id))
	gone, err := repo.FindOne(ctx, specification.ByID{ID: m.Id})
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

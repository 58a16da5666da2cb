package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohisvst29/moal/entity"
)

func TestReviewApprovalFlow(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)

	pending := &entity.Review{CustomerName: "سارة", Rating: 5, Comment: "رائع"}
	require.NoError(t, repo.Create(pending))
	assert.False(t, pending.Approved, "new reviews start hidden")

	visible, err := repo.FindApproved(10)
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, repo.SetApproved(pending.ID, true))
	visible, err = repo.FindApproved(10)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "سارة", visible[0].CustomerName)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(pending.ID))
	all, err = repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/exegete-ai/exegete/test/util"
)

func TestDocumentCRUD(t *testing.T) {
	client, _ := testutil.NewSQLiteClient(t)
	svc := NewDocumentService(client)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "Critique of Pure Reason", "Kant", "target", "content of the critique")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, len("content of the critique"), doc.CharCount)

	_, err = svc.Create(ctx, "Prolegomena", "Kant", "prior_work", "earlier content")
	require.NoError(t, err)

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Critique of Pure Reason", got.Title)

	// Missing documents return nil so callers can degrade
	got, err = svc.Get(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)

	docs, total, err := svc.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, docs, 2)

	docs, total, err = svc.List(ctx, "prior_work", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Prolegomena", docs[0].Title)

	require.NoError(t, svc.Delete(ctx, doc.ID))
	err = svc.Delete(ctx, doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

package builder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodatos/geoforms/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSnapshotFirstSave(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	b := NewDraft()
	b.SetTitle("Encuesta")
	b.now = fixedClock(now)

	snap := b.Snapshot()

	assert.Equal(t, now.UnixMilli(), snap.ID)
	assert.Equal(t, now, snap.CreatedAt)
	assert.Equal(t, now, snap.UpdatedAt)
	assert.Equal(t, snap.CreatedAt, snap.UpdatedAt)
}

func TestSnapshotSubsequentSaveKeepsIdentity(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)

	b := New(model.FormDocument{
		ID:        42,
		Title:     "Encuesta",
		Status:    model.StatusPublished,
		CreatedAt: created,
	})
	b.now = fixedClock(later)

	snap := b.Snapshot()

	assert.Equal(t, int64(42), snap.ID)
	assert.Equal(t, created, snap.CreatedAt)
	assert.Equal(t, later, snap.UpdatedAt)
}

func TestAdoptReplacesDocument(t *testing.T) {
	b := NewDraft()
	b.SetTitle("Borrador")

	b.Adopt(model.FormDocument{ID: 9, Title: "Persistida"})

	assert.Equal(t, int64(9), b.Document().ID)
	assert.Equal(t, "Persistida", b.Document().Title)
}

func TestSaveAdoptsPersistedState(t *testing.T) {
	b := NewDraft()
	b.SetTitle("Encuesta")

	persisted, err := b.Save(context.Background(), func(_ context.Context, doc model.FormDocument) (model.FormDocument, error) {
		doc.ID = 7
		doc.SubmissionCount = 3
		return doc, nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), persisted.ID)
	assert.Equal(t, int64(7), b.Document().ID, "builder adopts the persisted state")
	assert.Equal(t, 3, b.Document().SubmissionCount)
}

func TestSaveFailureLeavesDocumentAlone(t *testing.T) {
	b := NewDraft()
	b.SetTitle("Encuesta")

	_, err := b.Save(context.Background(), func(_ context.Context, doc model.FormDocument) (model.FormDocument, error) {
		return model.FormDocument{}, assert.AnError
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "builder.save")
	assert.Zero(t, b.Document().ID, "failed save must not adopt anything")
}

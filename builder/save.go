package builder

import (
	"context"

	"github.com/pkg/errors"

	"github.com/geodatos/geoforms/model"
)

// SaveFunc persists a document snapshot and returns the persisted state,
// normally with a server-assigned id. The builder never performs network
// I/O itself.
type SaveFunc func(ctx context.Context, doc model.FormDocument) (model.FormDocument, error)

// Snapshot assembles the persistable state of the document: a fresh id on
// first save, CreatedAt preserved once set, UpdatedAt always restamped, and
// the server-maintained SubmissionCount carried through untouched.
func (b *Builder) Snapshot() model.FormDocument {
	doc := b.doc
	now := b.now()

	if doc.ID == 0 {
		doc.ID = now.UnixMilli()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	return doc
}

// Adopt replaces the working document with the state a save collaborator
// returned. Callers running the save off the update loop snapshot first,
// save on the copy, then adopt back on the loop; the builder itself is not
// safe for concurrent use.
func (b *Builder) Adopt(doc model.FormDocument) {
	b.doc = doc
}

// Save hands a snapshot to the save collaborator and adopts the persisted
// state it returns.
func (b *Builder) Save(ctx context.Context, save SaveFunc) (model.FormDocument, error) {
	snapshot := b.Snapshot()

	persisted, err := save(ctx, snapshot)
	if err != nil {
		return model.FormDocument{}, errors.Wrap(err, "builder.save")
	}

	b.Adopt(persisted)
	return persisted, nil
}

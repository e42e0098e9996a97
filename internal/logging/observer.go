package logging

import (
	"go.uber.org/zap"

	"paodiario/internal/notebook"
)

// Observer logs notebook transitions. Note content is never logged, only
// its length.
type Observer struct {
	log *zap.SugaredLogger
}

var _ notebook.Observer = (*Observer)(nil)

// NewObserver returns an Observer writing to log.
func NewObserver(log *zap.SugaredLogger) *Observer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Observer{log: log.Named("notebook")}
}

func (o *Observer) OnNoteSaved(note notebook.Note) {
	o.log.Infow("note saved", "id", note.ID, "date", note.Date, "length", len(note.Content))
}

func (o *Observer) OnDraftRejected(draft string) {
	o.log.Debugw("empty draft rejected", "length", len(draft))
}

func (o *Observer) OnNoteDeleted(note notebook.Note) {
	o.log.Infow("note deleted", "id", note.ID)
}

func (o *Observer) OnDeleteMissed(id string) {
	o.log.Warnw("delete of unknown note ignored", "id", id)
}

func (o *Observer) OnStoreError(err error) {
	o.log.Errorw("note store failed", "error", err)
}

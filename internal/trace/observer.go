package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"paodiario/internal/notebook"
)

// Span names emitted by Observer.
const (
	SpanSave          = "notebook.save"
	SpanReject        = "notebook.reject"
	SpanDelete        = "notebook.delete"
	SpanDeleteMissed  = "notebook.delete_missed"
	SpanStoreError    = "notebook.store_error"
	attrNoteID        = "paodiario.note.id"
	attrNoteDate      = "paodiario.note.date"
	attrContentLength = "paodiario.note.length"
)

// Observer records each notebook transition as a zero-length span.
type Observer struct {
	tracer oteltrace.Tracer
}

var _ notebook.Observer = (*Observer)(nil)

// NewObserver returns an Observer using a tracer from tp. A nil tp yields
// an observer that records nothing.
func NewObserver(tp oteltrace.TracerProvider) *Observer {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Observer{tracer: tp.Tracer(TracerName)}
}

func (o *Observer) emit(name string, attrs ...attribute.KeyValue) oteltrace.Span {
	_, span := o.tracer.Start(context.Background(), name, oteltrace.WithAttributes(attrs...))
	return span
}

func (o *Observer) OnNoteSaved(note notebook.Note) {
	o.emit(SpanSave,
		attribute.String(attrNoteID, note.ID),
		attribute.String(attrNoteDate, note.Date),
		attribute.Int(attrContentLength, len(note.Content)),
	).End()
}

func (o *Observer) OnDraftRejected(draft string) {
	o.emit(SpanReject, attribute.Int(attrContentLength, len(draft))).End()
}

func (o *Observer) OnNoteDeleted(note notebook.Note) {
	o.emit(SpanDelete, attribute.String(attrNoteID, note.ID)).End()
}

func (o *Observer) OnDeleteMissed(id string) {
	o.emit(SpanDeleteMissed, attribute.String(attrNoteID, id)).End()
}

func (o *Observer) OnStoreError(err error) {
	span := o.emit(SpanStoreError)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End()
}

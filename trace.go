// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventKind identifies a lifecycle transition of a handle.
type EventKind uint8

const (
	EventBuild EventKind = iota + 1
	EventDrop
	EventLeak
	EventMoveOut
	EventCompose
	EventRollback
)

var eventNames = [...]string{
	EventBuild:    "build",
	EventDrop:     "drop",
	EventLeak:     "leak",
	EventMoveOut:  "move_out",
	EventCompose:  "compose",
	EventRollback: "rollback",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) && eventNames[k] != "" {
		return eventNames[k]
	}
	return "unknown"
}

// Event describes one transition. Region and Offset locate the storage the
// handle was derived from; both are zero for storage outside an [Arena].
// Count is the number of elements affected.
type Event struct {
	Kind   EventKind
	Region uuid.UUID
	Offset int
	Type   string
	Count  int
}

// Tracer receives handle events. Implementations are called synchronously
// on the goroutine performing the transition.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a function to [Tracer].
type TracerFunc func(Event)

func (f TracerFunc) Trace(e Event) { f(e) }

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// NopTracer returns a tracer that discards every event.
func NopTracer() Tracer { return nopTracer{} }

type zapTracer struct {
	log *zap.Logger
}

// ZapTracer returns a tracer that logs events at debug level.
func ZapTracer(log *zap.Logger) Tracer {
	if log == nil {
		return nopTracer{}
	}
	return &zapTracer{log: log.Named("place")}
}

func (z *zapTracer) Trace(e Event) {
	if ce := z.log.Check(zap.DebugLevel, e.Kind.String()); ce != nil {
		ce.Write(
			zap.Stringer("region", e.Region),
			zap.Int("offset", e.Offset),
			zap.String("type", e.Type),
			zap.Int("count", e.Count),
		)
	}
}

// tracing is the origin a handle inherits from its storage.
type tracing struct {
	tracer Tracer
	region uuid.UUID
	offset int
}

// emit reports an event about count values of type T.
func emit[T any](t tracing, kind EventKind, count int) {
	if t.tracer == nil {
		return
	}
	t.tracer.Trace(Event{Kind: kind, Region: t.region, Offset: t.offset, Type: typeName[T](), Count: count})
}

// at returns the origin of a sub-place idx elements past t.
func (t tracing) at(idx int) tracing {
	t.offset += idx
	return t
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

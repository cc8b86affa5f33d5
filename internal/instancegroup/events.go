package instancegroup

import (
	"time"

	"github.com/go-logr/logr"
)

// Observer receives structured reconcile events.
type Observer interface {
	Event(event Event)
}

// Event represents a structured reconcile event.
type Event struct {
	Type      EventType
	Resource  string // group name
	Message   string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType represents the type of reconcile event.
type EventType string

const (
	// EventResourceExists indicates the group already exists.
	EventResourceExists EventType = "resource.exists"
	// EventResourceAbsent indicates the group does not exist.
	EventResourceAbsent EventType = "resource.absent"
	// EventResourceCreating indicates the group is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates the group was created.
	EventResourceCreated EventType = "resource.created"
	// EventResourceDeleting indicates the group is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates the group was deleted.
	EventResourceDeleted EventType = "resource.deleted"
	// EventResourceFailed indicates a create or delete was rejected.
	EventResourceFailed EventType = "resource.failed"
)

// LogObserver writes events to a logr.Logger.
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver creates an observer that logs every event at verbosity 0.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// Event implements Observer.
func (o *LogObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	kv := make([]any, 0, 4+2*len(event.Fields))
	kv = append(kv, "event", string(event.Type), "group", event.Resource)
	for k, v := range event.Fields {
		kv = append(kv, k, v)
	}
	o.log.Info(event.Message, kv...)
}

type nopObserver struct{}

func (nopObserver) Event(Event) {}

package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	// EventTypeMinted synthetic asset minted against collateral
	EventTypeMinted = "minted"
	// EventTypePaidBack debt position reduced
	EventTypePaidBack = "paid_back"
	// EventTypeMarginCall margin call notification, no state change
	EventTypeMarginCall = "margin_call"
	// EventTypeLiquidated collateral seized
	EventTypeLiquidated = "liquidated"
)

// Event an observability record emitted after a successful state
// transition. Events are never written before the mutation commits.
type Event struct {
	ID         uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID    string         `sql:"size:36;unique_index:event_trace_idx" json:"trace_id"`
	Type       string         `sql:"size:24;index:event_type_idx" json:"type"`
	UserID     string         `sql:"size:36;index:event_user_idx" json:"user_id"`
	PositionID string         `sql:"size:36" json:"position_id"`
	Data       types.JSONText `sql:"type:varchar(1024)" json:"data,omitempty"`
	CreatedAt  time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// NewEvent new event with a json payload
func NewEvent(traceID, typ, userID, positionID string, data map[string]interface{}) *Event {
	bs, err := json.Marshal(data)
	if err != nil {
		bs = []byte("{}")
	}

	return &Event{
		TraceID:    traceID,
		Type:       typ,
		UserID:     userID,
		PositionID: positionID,
		Data:       bs,
	}
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, event *Event) error
	FindByTrace(ctx context.Context, traceID string) (*Event, error)
	List(ctx context.Context, userID string, limit int) ([]*Event, error)
}

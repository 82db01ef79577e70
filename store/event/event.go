package event

import (
	"context"

	"cdp/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) core.IEventStore {
	return &eventStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Event{})
		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, event *core.Event) error {
	return s.db.Update().Create(event).Error
}

func (s *eventStore) FindByTrace(ctx context.Context, traceID string) (*core.Event, error) {
	var event core.Event
	if err := s.db.View().Where("trace_id=?", traceID).First(&event).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Event{}, nil
		}
		return nil, err
	}

	return &event, nil
}

func (s *eventStore) List(ctx context.Context, userID string, limit int) ([]*core.Event, error) {
	query := s.db.View().Order("id desc").Limit(limit)
	if userID != "" {
		query = query.Where("user_id=?", userID)
	}

	var events []*core.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

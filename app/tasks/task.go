package tasks

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lysyi3m/rss-pulse/app/feed"
)

type TaskType string

const (
	TaskTypeFetchItems  TaskType = "fetch_items"
	TaskTypeEnrichItems TaskType = "enrich_items"
	TaskTypePublishSite TaskType = "publish_site"
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetName() string
	Start()
	GetDuration() time.Duration
}

type Task struct {
	ID        string
	Type      TaskType
	Name      string
	StartedAt *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetName() string {
	return t.Name
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType, name string) Task {
	uniqueID := fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(10000))

	return Task{
		ID:   uniqueID,
		Type: taskType,
		Name: name,
	}
}

// Batch is the item list handed from one stage to the next. Now is fixed for
// the whole run so every stage agrees on the recency cutoff and date fallbacks.
type Batch struct {
	Now   time.Time
	Items []feed.Item
}

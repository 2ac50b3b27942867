package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeIntegrationBulkSync = "integration:bulk_sync"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// Queues maps queue names to their processing weight.
var Queues = map[string]int{
	QueueHigh:    6,
	QueueDefault: 3,
	QueueLow:     1,
}

// bulkSyncUniqueFor keeps a second click from queueing a duplicate sync of the
// same campaign while the first one is pending.
const bulkSyncUniqueFor = 10 * time.Minute

// IntegrationBulkSyncPayload asks the worker to push every entry of a campaign
type IntegrationBulkSyncPayload struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

// NewIntegrationBulkSyncTask creates a bulk sync task
func NewIntegrationBulkSyncTask(payload IntegrationBulkSyncPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeIntegrationBulkSync, data,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Minute),
		asynq.Unique(bulkSyncUniqueFor),
	), nil
}

// ParseIntegrationBulkSyncPayload decodes a bulk sync task payload
func ParseIntegrationBulkSyncPayload(task *asynq.Task) (IntegrationBulkSyncPayload, error) {
	var payload IntegrationBulkSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal bulk sync payload: %w", err)
	}
	if payload.CampaignID == uuid.Nil {
		return payload, fmt.Errorf("bulk sync payload has no campaign id")
	}
	return payload, nil
}

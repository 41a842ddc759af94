package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeStatusAudit = "ledger:statusAudit"

// StatusAuditPayload describes one sweep request.
type StatusAuditPayload struct {
	Reason      string `json:"reason"`
	RequestedAt string `json:"requestedAt"`
}

// NewStatusAuditTask builds an audit sweep task scheduled for fireAt.
func NewStatusAuditTask(payload StatusAuditPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeStatusAudit, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

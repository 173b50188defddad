package models

import "encoding/json"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TaskFields is the partial field set accepted on create and update.
// Values are kept as sent and forwarded unchanged. A field that is absent
// or null never reaches the remote call.
type TaskFields struct {
	Title       json.RawMessage `json:"title,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Status      json.RawMessage `json:"status,omitempty"`
	RepoURL     json.RawMessage `json:"repoURL,omitempty"`
	DependsOn   json.RawMessage `json:"dependsOn,omitempty"`
	ParentID    json.RawMessage `json:"parentID,omitempty"`
}

type TaskFilter struct {
	Limit   int
	Status  *string
	RepoURL *string
	Ready   bool
}

package models

// Worker is a roster entry for one team. Name is the only field the UI
// exposes for editing.
type Worker struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

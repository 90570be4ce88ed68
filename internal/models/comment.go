package models

import "time"

// Comment represents a note on a task
type Comment struct {
	ID          string
	TaskID      string
	Body        string
	AuthorID    string
	AuthorEmail string
	CreatedAt   time.Time
}

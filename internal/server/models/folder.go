// Package models holds the records persisted by the sync server.
package models

import "time"

// Folder is the server copy of a folder. Name is the client's encrypted
// string and is never interpreted by the server.
type Folder struct {
	ID           string
	UserID       string
	Name         string
	RevisionDate time.Time
}

package models

import "time"

// FolderRequest is the body of a create or update call.
type FolderRequest struct {
	Name EncString
}

func NewFolderRequest(f *Folder) FolderRequest {
	return FolderRequest{Name: f.Name}
}

// FolderResponse is the server's authoritative folder record.
type FolderResponse struct {
	ID           string
	Name         EncString
	RevisionDate time.Time
}

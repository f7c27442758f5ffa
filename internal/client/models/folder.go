// Package models defines client-side data models: folders in their stored,
// domain and decrypted shapes, items (ciphers) that reference folders, and the
// request/response types exchanged with the sync service.
package models

import (
	"context"
	"time"
)

// FolderData is the persisted shape of a folder, one value per entry of the
// per-user "folders_<userId>" collection. The map key always equals ID.
type FolderData struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         EncString `json:"name"`
	RevisionDate time.Time `json:"revisionDate"`
}

// NewFolderData converts an authoritative server response into the stored
// shape for userID.
func NewFolderData(resp *FolderResponse, userID string) *FolderData {
	return &FolderData{
		ID:           resp.ID,
		UserID:       userID,
		Name:         resp.Name,
		RevisionDate: resp.RevisionDate,
	}
}

// Folder is the encrypted domain object. ID is empty until the folder has
// been created on the server.
type Folder struct {
	ID           string
	Name         EncString
	RevisionDate time.Time
}

func NewFolder(d *FolderData) *Folder {
	return &Folder{ID: d.ID, Name: d.Name, RevisionDate: d.RevisionDate}
}

// FolderView is the decrypted, display-ready folder. Name is nil when the
// stored name could not be decrypted. Views are never persisted.
type FolderView struct {
	ID           string
	Name         *string
	RevisionDate time.Time
}

// DisplayName returns the name or fallback if the name is unavailable.
func (v FolderView) DisplayName(fallback string) string {
	if v.Name == nil {
		return fallback
	}
	return *v.Name
}

// Decrypter is the part of the encryption gateway a Folder needs to decrypt
// itself. A nil key selects the gateway's current key.
type Decrypter interface {
	Decrypt(ctx context.Context, value EncString, key []byte) (string, error)
}

// Decrypt returns the view of f. On failure the view is still returned, with
// a nil Name, together with the error.
func (f *Folder) Decrypt(ctx context.Context, d Decrypter) (FolderView, error) {
	view := FolderView{ID: f.ID, RevisionDate: f.RevisionDate}
	if err := f.Name.Err(); err != nil {
		return view, err
	}
	name, err := d.Decrypt(ctx, f.Name, nil)
	if err != nil {
		return view, err
	}
	view.Name = &name
	return view, nil
}

package models

import (
	"fmt"
	"time"
)

// CipherType classifies an item kind.
type CipherType string

const (
	CipherTypeLogin      CipherType = "login"
	CipherTypeNote       CipherType = "note"
	CipherTypeCreditCard CipherType = "credit_card"
)

// ParseCipherType returns the item kind named s.
func ParseCipherType(s string) (CipherType, error) {
	switch t := CipherType(s); t {
	case CipherTypeLogin, CipherTypeNote, CipherTypeCreditCard:
		return t, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// CipherData is the persisted shape of an item, stored in the per-user
// "ciphers_<userId>" collection. FolderID is empty for items without a folder
// and otherwise must name an existing folder.
type CipherData struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	FolderID     string     `json:"folderId,omitempty"`
	Type         CipherType `json:"type"`
	Name         EncString  `json:"name"`
	RevisionDate time.Time  `json:"revisionDate"`
}

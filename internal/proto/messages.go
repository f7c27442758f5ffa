package proto

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMalformedMessage = errors.New("malformed message")

const (
	fieldID           = "id"
	fieldName         = "name"
	fieldRevisionDate = "revision_date"
	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
)

// Folder is the wire shape of a folder. Name is the encrypted name in its
// text form; the service never sees plaintext.
type Folder struct {
	ID           string
	Name         string
	RevisionDate time.Time
}

func (f Folder) ToStruct() *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldName: structpb.NewStringValue(f.Name),
	}
	if f.ID != "" {
		fields[fieldID] = structpb.NewStringValue(f.ID)
	}
	if !f.RevisionDate.IsZero() {
		fields[fieldRevisionDate] = structpb.NewStringValue(f.RevisionDate.UTC().Format(time.RFC3339Nano))
	}
	return &structpb.Struct{Fields: fields}
}

// FolderFromStruct decodes a folder message. The name field is required, id
// and revision_date are optional.
func FolderFromStruct(s *structpb.Struct) (Folder, error) {
	if s == nil {
		return Folder{}, fmt.Errorf("%w: nil folder", ErrMalformedMessage)
	}

	var f Folder
	var err error

	if f.Name, err = stringField(s, fieldName, true); err != nil {
		return Folder{}, err
	}
	if f.ID, err = stringField(s, fieldID, false); err != nil {
		return Folder{}, err
	}

	rev, err := stringField(s, fieldRevisionDate, false)
	if err != nil {
		return Folder{}, err
	}
	if rev != "" {
		if f.RevisionDate, err = time.Parse(time.RFC3339Nano, rev); err != nil {
			return Folder{}, fmt.Errorf("%w: %s: %v", ErrMalformedMessage, fieldRevisionDate, err)
		}
	}
	return f, nil
}

// FoldersToList packs folders into a ListValue.
func FoldersToList(folders []Folder) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(folders))
	for _, f := range folders {
		values = append(values, structpb.NewStructValue(f.ToStruct()))
	}
	return &structpb.ListValue{Values: values}
}

func FoldersFromList(l *structpb.ListValue) ([]Folder, error) {
	folders := make([]Folder, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("%w: list item %d is not a folder", ErrMalformedMessage, i)
		}
		f, err := FolderFromStruct(s)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// Tokens is an access/refresh token pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

func (t Tokens) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldAccessToken:  structpb.NewStringValue(t.AccessToken),
		fieldRefreshToken: structpb.NewStringValue(t.RefreshToken),
	}}
}

func TokensFromStruct(s *structpb.Struct) (Tokens, error) {
	if s == nil {
		return Tokens{}, fmt.Errorf("%w: nil tokens", ErrMalformedMessage)
	}
	access, err := stringField(s, fieldAccessToken, true)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := stringField(s, fieldRefreshToken, true)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func stringField(s *structpb.Struct, name string, required bool) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		if required {
			return "", fmt.Errorf("%w: missing %s", ErrMalformedMessage, name)
		}
		return "", nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedMessage, name)
	}
	return sv.StringValue, nil
}

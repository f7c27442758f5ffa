package models

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncString_TextForm(t *testing.T) {
	e := EncString{Nonce: []byte{1, 2, 3}, Data: []byte("abc")}
	require.Equal(t, "1.AQID|YWJj", e.String())

	back, err := ParseEncString(e.String())
	require.NoError(t, err)
	require.Equal(t, e, back)
}

func TestEncString_ZeroIsEmpty(t *testing.T) {
	require.True(t, EncString{}.IsZero())
	require.Equal(t, "", EncString{}.String())

	v, err := ParseEncString("")
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestParseEncString_Malformed(t *testing.T) {
	for _, s := range []string{
		"AQID|YWJj",       // no type
		"2.AQID|YWJj",     // unknown type
		"1.AQID",          // no separator
		"1.***|YWJj",      // bad nonce
		"1.AQID|not b64!", // bad data
	} {
		_, err := ParseEncString(s)
		require.Truef(t, errors.Is(err, ErrMalformedEncString), "input %q: %v", s, err)
	}
}

func TestFolderData_JSONUsesTextName(t *testing.T) {
	d := FolderData{
		ID:           "f1",
		UserID:       "u1",
		Name:         EncString{Nonce: []byte{1}, Data: []byte{2}},
		RevisionDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Contains(t, string(b), `"name":"1.AQ==|Ag=="`)

	var got FolderData
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, d, got)
}

func TestCipherData_EmptyFolderOmitted(t *testing.T) {
	b, err := json.Marshal(CipherData{ID: "c1", Type: CipherTypeLogin})
	require.NoError(t, err)
	require.NotContains(t, string(b), "folderId")
}

func TestNewFolderData_FromResponse(t *testing.T) {
	rev := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := &FolderResponse{ID: "srv-1", Name: EncString{Nonce: []byte{9}, Data: []byte{8}}, RevisionDate: rev}

	d := NewFolderData(resp, "user-1")
	require.Equal(t, &FolderData{ID: "srv-1", UserID: "user-1", Name: resp.Name, RevisionDate: rev}, d)

	f := NewFolder(d)
	require.Equal(t, "srv-1", f.ID)
	require.Equal(t, resp.Name, f.Name)
	require.Equal(t, rev, f.RevisionDate)
	require.Equal(t, FolderRequest{Name: resp.Name}, NewFolderRequest(f))
}

type stubDecrypter struct {
	out string
	err error
}

func (s stubDecrypter) Decrypt(context.Context, EncString, []byte) (string, error) {
	return s.out, s.err
}

func TestFolder_Decrypt(t *testing.T) {
	f := &Folder{ID: "f1"}

	v, err := f.Decrypt(context.Background(), stubDecrypter{out: "Work"})
	require.NoError(t, err)
	require.Equal(t, "f1", v.ID)
	require.NotNil(t, v.Name)
	require.Equal(t, "Work", *v.Name)
	require.Equal(t, "Work", v.DisplayName("?"))
}

func TestFolder_DecryptFailureKeepsIdentity(t *testing.T) {
	f := &Folder{ID: "f1"}
	boom := errors.New("corrupt")

	v, err := f.Decrypt(context.Background(), stubDecrypter{err: boom})
	require.ErrorIs(t, err, boom)
	require.Equal(t, "f1", v.ID)
	require.Nil(t, v.Name)
	require.Equal(t, "?", v.DisplayName("?"))
}

func TestFolderData_MalformedNameIsKept(t *testing.T) {
	var got FolderData
	require.NoError(t, json.Unmarshal([]byte(`{"id":"f1","userId":"u1","name":"garbage"}`), &got))
	require.Equal(t, "f1", got.ID)
	require.ErrorIs(t, got.Name.Err(), ErrMalformedEncString)
	require.False(t, got.Name.IsZero())

	b, err := json.Marshal(got)
	require.NoError(t, err)
	require.Contains(t, string(b), `"name":"garbage"`)

	v, err := NewFolder(&got).Decrypt(context.Background(), stubDecrypter{out: "never"})
	require.ErrorIs(t, err, ErrMalformedEncString)
	require.Equal(t, "f1", v.ID)
	require.Nil(t, v.Name)
}

func TestParseCipherType(t *testing.T) {
	for _, want := range []CipherType{CipherTypeLogin, CipherTypeNote, CipherTypeCreditCard} {
		got, err := ParseCipherType(string(want))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseCipherType("-")
	require.Error(t, err)
}

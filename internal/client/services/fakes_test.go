package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/foldervault/internal/client/models"
	"github.com/dmitrijs2005/foldervault/internal/common"
)

// ---- storage ----

// memStorage keeps JSON-encoded values like the SQLite store does, so callers
// never share memory with what was saved.
type memStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	saves   int
	removes int

	getErr  error
	saveErr error
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}}
}

func (m *memStorage) Get(ctx context.Context, key string, v any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func (m *memStorage) Save(ctx context.Context, key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++
	delete(m.data, key)
	return nil
}

func (m *memStorage) counts() (gets, saves, removes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets, m.saves, m.removes
}

// ---- crypto ----

var errCorrupt = errors.New("corrupt ciphertext")

// fakeCrypto "encrypts" by storing the plaintext as data. Values whose data
// starts with "corrupt" fail to decrypt.
type fakeCrypto struct {
	mu     sync.Mutex
	hasKey bool

	// gate, when set, blocks every Decrypt until it is closed. started is
	// closed on the first Decrypt.
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
}

func (f *fakeCrypto) HasKey() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasKey
}

func (f *fakeCrypto) SetKey(key []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hasKey = true
	return nil
}

func (f *fakeCrypto) ClearKey() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hasKey = false
}

func (f *fakeCrypto) Encrypt(ctx context.Context, plaintext string, key []byte) (models.EncString, error) {
	if key == nil && !f.HasKey() {
		return models.EncString{}, common.ErrNoEncryptionKey
	}
	return models.EncString{Nonce: []byte("nonce"), Data: []byte(plaintext)}, nil
}

func (f *fakeCrypto) Decrypt(ctx context.Context, value models.EncString, key []byte) (string, error) {
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.gate != nil {
		<-f.gate
	}
	if strings.HasPrefix(string(value.Data), "corrupt") {
		return "", errCorrupt
	}
	return string(value.Data), nil
}

func sealed(name string) models.EncString {
	return models.EncString{Nonce: []byte("nonce"), Data: []byte(name)}
}

// ---- identity ----

type fixedUser struct {
	id  string
	err error
}

func (u *fixedUser) GetUserID(ctx context.Context) (string, error) { return u.id, u.err }
func (u *fixedUser) SetUserID(ctx context.Context, id string) error {
	u.id = id
	return nil
}

// ---- remote client ----

type fakeAPI struct {
	createReq  *models.FolderRequest
	updateID   string
	updateReq  *models.FolderRequest
	deletedIDs []string

	resp      *models.FolderResponse
	list      []*models.FolderResponse
	createErr error
	updateErr error
	deleteErr error
	listErr   error
	pingErr   error
}

func (f *fakeAPI) Close() error                   { return nil }
func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeAPI) CreateFolder(ctx context.Context, req models.FolderRequest) (*models.FolderResponse, error) {
	f.createReq = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.resp, nil
}

func (f *fakeAPI) UpdateFolder(ctx context.Context, id string, req models.FolderRequest) (*models.FolderResponse, error) {
	f.updateID = id
	f.updateReq = &req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.resp, nil
}

func (f *fakeAPI) DeleteFolder(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeAPI) ListFolders(ctx context.Context) ([]*models.FolderResponse, error) {
	return f.list, f.listErr
}

// ---- item store ----

type fakeCiphers struct {
	items       map[string]*models.CipherData
	getCalls    int
	upsertCalls [][]*models.CipherData
	upsertErr   error
}

func (f *fakeCiphers) GetAllForUser(ctx context.Context, userID string) (map[string]*models.CipherData, error) {
	f.getCalls++
	out := make(map[string]*models.CipherData, len(f.items))
	for id, c := range f.items {
		cp := *c
		out[id] = &cp
	}
	return out, nil
}

func (f *fakeCiphers) Add(ctx context.Context, t models.CipherType, name models.EncString, folderID string) (*models.CipherData, error) {
	return nil, errors.New("not used")
}

func (f *fakeCiphers) Upsert(ctx context.Context, ciphers ...*models.CipherData) error {
	f.upsertCalls = append(f.upsertCalls, ciphers)
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, c := range ciphers {
		f.items[c.ID] = c
	}
	return nil
}

func (f *fakeCiphers) Clear(ctx context.Context, userID string) error {
	f.items = map[string]*models.CipherData{}
	return nil
}

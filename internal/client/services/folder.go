package services

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dmitrijs2005/foldervault/internal/client/client"
	"github.com/dmitrijs2005/foldervault/internal/client/crypto"
	"github.com/dmitrijs2005/foldervault/internal/client/i18n"
	"github.com/dmitrijs2005/foldervault/internal/client/models"
	"github.com/dmitrijs2005/foldervault/internal/client/storage"
	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/logging"
	"golang.org/x/sync/errgroup"
)

// FolderService stores the current user's folders and serves their decrypted,
// locale-sorted view.
//
// Every mutation persists the whole collection and then invalidates the view
// cache. Deleting a folder moves the items it contained to "no folder".
type FolderService interface {
	// ClearCache drops the decrypted view. Nothing else changes.
	ClearCache()

	// Encrypt seals view.Name under key, or under the current key if key is nil.
	Encrypt(ctx context.Context, view models.FolderView, key []byte) (*models.Folder, error)

	// Get returns the folder with id, or nil if there is none.
	Get(ctx context.Context, id string) (*models.Folder, error)
	GetAll(ctx context.Context) ([]*models.Folder, error)

	// GetAllDecrypted returns every folder decrypted and sorted for the
	// current locale, followed by the "no folder" entry.
	GetAllDecrypted(ctx context.Context) ([]models.FolderView, error)

	SaveWithServer(ctx context.Context, folder *models.Folder) error
	SyncWithServer(ctx context.Context) error

	Upsert(ctx context.Context, folders ...*models.FolderData) error
	Replace(ctx context.Context, folders map[string]*models.FolderData) error
	Clear(ctx context.Context, userID string) error

	Delete(ctx context.Context, id string) error
	DeleteWithServer(ctx context.Context, id string) error
}

// FolderServiceDeps are the collaborators of a FolderService.
type FolderServiceDeps struct {
	Crypto  crypto.Service
	Users   UserService
	API     client.Client
	Storage storage.Service
	I18n    i18n.Service
	Ciphers CipherService
	Logger  logging.Logger

	// DecryptWorkers bounds concurrent decryptions; zero means GOMAXPROCS.
	DecryptWorkers int
}

// folderSnapshot is one generation of the decrypted view. A snapshot with nil
// views marks the cache as empty. Each invalidation installs a fresh marker,
// so a read that loaded the previous marker cannot publish over it.
type folderSnapshot struct {
	views []models.FolderView
}

type folderService struct {
	crypto  crypto.Service
	users   UserService
	api     client.Client
	storage storage.Service
	i18n    i18n.Service
	ciphers CipherService
	logger  logging.Logger
	workers int

	cache atomic.Pointer[folderSnapshot]
}

func NewFolderService(deps FolderServiceDeps) FolderService {
	workers := deps.DecryptWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &folderService{
		crypto:  deps.Crypto,
		users:   deps.Users,
		api:     deps.API,
		storage: deps.Storage,
		i18n:    deps.I18n,
		ciphers: deps.Ciphers,
		logger:  logger.With("module", "folders"),
		workers: workers,
	}
	s.cache.Store(&folderSnapshot{})
	return s
}

func foldersKey(userID string) string {
	return fmt.Sprintf(common.FoldersKeyFormat, userID)
}

func (s *folderService) ClearCache() {
	s.cache.Store(&folderSnapshot{})
}

func (s *folderService) Encrypt(ctx context.Context, view models.FolderView, key []byte) (*models.Folder, error) {
	if view.Name == nil {
		return nil, ErrFolderNameUnavailable
	}
	name, err := s.crypto.Encrypt(ctx, *view.Name, key)
	if err != nil {
		return nil, err
	}
	return &models.Folder{ID: view.ID, Name: name, RevisionDate: view.RevisionDate}, nil
}

func (s *folderService) Get(ctx context.Context, id string) (*models.Folder, error) {
	stored, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := stored[id]
	if !ok {
		return nil, nil
	}
	return models.NewFolder(d), nil
}

func (s *folderService) GetAll(ctx context.Context) ([]*models.Folder, error) {
	stored, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	folders := make([]*models.Folder, 0, len(stored))
	for _, d := range stored {
		folders = append(folders, models.NewFolder(d))
	}
	return folders, nil
}

func (s *folderService) GetAllDecrypted(ctx context.Context) ([]models.FolderView, error) {
	snap := s.cache.Load()
	if snap.views != nil {
		return cloneViews(snap.views), nil
	}

	if !s.crypto.HasKey() {
		return nil, common.ErrNoEncryptionKey
	}

	folders, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Equal names keep id order from one computation to the next.
	slices.SortFunc(folders, func(a, b *models.Folder) int {
		return strings.Compare(a.ID, b.ID)
	})

	views := s.decryptAll(ctx, folders)
	slices.SortStableFunc(views, compareFolderViews(s.i18n.Compare))

	noFolder := s.i18n.T(common.NoneFolderKey)
	views = append(views, models.FolderView{Name: &noFolder})

	s.cache.CompareAndSwap(snap, &folderSnapshot{views: views})
	return cloneViews(views), nil
}

// cloneViews deep-copies views so callers never share names with the cache.
func cloneViews(views []models.FolderView) []models.FolderView {
	out := make([]models.FolderView, len(views))
	for i, v := range views {
		if v.Name != nil {
			name := *v.Name
			v.Name = &name
		}
		out[i] = v
	}
	return out
}

// decryptAll decrypts every folder concurrently. A folder that fails to
// decrypt keeps its slot with a nil name.
func (s *folderService) decryptAll(ctx context.Context, folders []*models.Folder) []models.FolderView {
	views := make([]models.FolderView, len(folders))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, f := range folders {
		g.Go(func() error {
			view, err := f.Decrypt(ctx, s.crypto)
			if err != nil {
				s.logger.Warn(ctx, "folder name decryption failed", "folder_id", f.ID, "error", err)
			}
			views[i] = view
			return nil
		})
	}
	_ = g.Wait()

	return views
}

// compareFolderViews orders views without a name first, then by cmp.
func compareFolderViews(cmp func(a, b string) int) func(a, b models.FolderView) int {
	return func(a, b models.FolderView) int {
		switch {
		case a.Name == nil && b.Name == nil:
			return 0
		case a.Name == nil:
			return -1
		case b.Name == nil:
			return 1
		}
		return cmp(*a.Name, *b.Name)
	}
}

func (s *folderService) SaveWithServer(ctx context.Context, folder *models.Folder) error {
	req := models.NewFolderRequest(folder)

	var resp *models.FolderResponse
	var err error
	if folder.ID == "" {
		resp, err = s.api.CreateFolder(ctx, req)
		if err != nil {
			return fmt.Errorf("create folder: %w", err)
		}
		folder.ID = resp.ID
	} else {
		resp, err = s.api.UpdateFolder(ctx, folder.ID, req)
		if err != nil {
			return fmt.Errorf("update folder %s: %w", folder.ID, err)
		}
	}
	folder.RevisionDate = resp.RevisionDate

	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return err
	}
	return s.Upsert(ctx, models.NewFolderData(resp, userID))
}

// SyncWithServer replaces the local collection with the server's.
func (s *folderService) SyncWithServer(ctx context.Context) error {
	remote, err := s.api.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("list folders: %w", err)
	}

	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return err
	}

	folders := make(map[string]*models.FolderData, len(remote))
	for _, r := range remote {
		folders[r.ID] = models.NewFolderData(r, userID)
	}
	if err := s.Replace(ctx, folders); err != nil {
		return err
	}

	s.logger.Info(ctx, "folders synchronized", "count", len(folders))
	return nil
}

func (s *folderService) Upsert(ctx context.Context, folders ...*models.FolderData) error {
	for _, f := range folders {
		if f.ID == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidFolderRecord)
		}
	}

	stored, userID, err := s.load(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		stored = make(map[string]*models.FolderData, len(folders))
	}
	for _, f := range folders {
		stored[f.ID] = f
	}

	if err := s.save(ctx, userID, stored); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func (s *folderService) Replace(ctx context.Context, folders map[string]*models.FolderData) error {
	for id, f := range folders {
		if f == nil || f.ID != id {
			return fmt.Errorf("%w: key %q", ErrInvalidFolderRecord, id)
		}
	}

	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return err
	}
	if folders == nil {
		folders = map[string]*models.FolderData{}
	}

	if err := s.save(ctx, userID, folders); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

// Clear removes the folders of any user, not only the current one.
func (s *folderService) Clear(ctx context.Context, userID string) error {
	if err := s.storage.Remove(ctx, foldersKey(userID)); err != nil {
		return fmt.Errorf("clear folders: %w", err)
	}
	s.ClearCache()
	return nil
}

// Delete removes the folder and then moves its items to "no folder". Deleting
// an unknown id does nothing. If moving the items fails the folder stays
// deleted and the error is returned.
func (s *folderService) Delete(ctx context.Context, id string) error {
	stored, userID, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := stored[id]; !ok {
		return nil
	}

	delete(stored, id)
	if err := s.save(ctx, userID, stored); err != nil {
		return err
	}
	s.ClearCache()

	moved, err := s.reassignItems(ctx, userID, id)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "folder deleted", "folder_id", id, "items_moved", moved)
	return nil
}

func (s *folderService) reassignItems(ctx context.Context, userID, folderID string) (int, error) {
	ciphers, err := s.ciphers.GetAllForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("reassign items of folder %s: %w", folderID, err)
	}

	var updates []*models.CipherData
	for _, c := range ciphers {
		if c.FolderID == folderID {
			c.FolderID = ""
			updates = append(updates, c)
		}
	}
	if len(updates) == 0 {
		return 0, nil
	}
	slices.SortFunc(updates, func(a, b *models.CipherData) int {
		return strings.Compare(a.ID, b.ID)
	})

	if err := s.ciphers.Upsert(ctx, updates...); err != nil {
		return 0, fmt.Errorf("reassign items of folder %s: %w", folderID, err)
	}
	return len(updates), nil
}

func (s *folderService) DeleteWithServer(ctx context.Context, id string) error {
	if err := s.api.DeleteFolder(ctx, id); err != nil {
		return fmt.Errorf("delete folder %s: %w", id, err)
	}
	return s.Delete(ctx, id)
}

// load reads the current user's collection. A user without folders gets a
// nil map.
func (s *folderService) load(ctx context.Context) (map[string]*models.FolderData, string, error) {
	userID, err := s.users.GetUserID(ctx)
	if err != nil {
		return nil, "", err
	}

	var stored map[string]*models.FolderData
	if _, err := s.storage.Get(ctx, foldersKey(userID), &stored); err != nil {
		return nil, "", fmt.Errorf("load folders: %w", err)
	}
	return stored, userID, nil
}

func (s *folderService) save(ctx context.Context, userID string, folders map[string]*models.FolderData) error {
	if err := s.storage.Save(ctx, foldersKey(userID), folders); err != nil {
		return fmt.Errorf("save folders: %w", err)
	}
	return nil
}

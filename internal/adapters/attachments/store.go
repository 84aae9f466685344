package attachments

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"offjournal/internal/application"
	"offjournal/internal/ports"
)

// MediaDir is the folder under the data directory holding attachments
const MediaDir = "media"

// Store implements ports.MediaStore on diskv.
// Keys are "<entryID>/<filename>" and map to media/<entryID>/<filename>.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

var _ ports.MediaStore = (*Store)(nil)

// New creates an attachment store rooted at dataDir
func New(dataDir string) *Store {
	basePath := filepath.Join(dataDir, MediaDir)
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      4 * 1024 * 1024, // 4MB
		}),
		basePath: basePath,
	}
}

// Add copies srcPath into the attachments of entryID
func (s *Store) Add(entryID, srcPath string) (string, error) {
	if err := checkEntryID(entryID); err != nil {
		return "", err
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("source file %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source %s is a directory", srcPath)
	}

	name := filepath.Base(srcPath)
	if err := checkFilename(name); err != nil {
		return "", err
	}
	key := toKey(entryID, name)
	if s.d.Has(key) {
		return "", fmt.Errorf("%s already attached to %s: %w", name, entryID, application.ErrAlreadyExists)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.d.WriteStream(key, f, true); err != nil {
		return "", fmt.Errorf("failed to store %s: %w", name, err)
	}
	return name, nil
}

// List returns attachment filenames of an entry, sorted
func (s *Store) List(entryID string) ([]string, error) {
	if err := checkEntryID(entryID); err != nil {
		return nil, err
	}

	cancel := make(chan struct{})
	defer close(cancel)

	names := []string{}
	for key := range s.d.KeysPrefix(entryID+"/", cancel) {
		pk := keyToPathTransform(key)
		if len(pk.Path) == 1 && pk.Path[0] == entryID {
			names = append(names, pk.FileName)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes a single attachment
func (s *Store) Remove(entryID, filename string) error {
	if err := checkEntryID(entryID); err != nil {
		return err
	}
	if err := checkFilename(filename); err != nil {
		return err
	}
	key := toKey(entryID, filename)
	if !s.d.Has(key) {
		return &application.NotFoundError{Kind: "attachment", ID: key}
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// FilePath returns where an attachment lives on disk
func (s *Store) FilePath(entryID, filename string) (string, error) {
	if err := checkEntryID(entryID); err != nil {
		return "", err
	}
	if err := checkFilename(filename); err != nil {
		return "", err
	}
	return filepath.Join(s.basePath, entryID, filename), nil
}

func toKey(entryID, filename string) string {
	return entryID + "/" + filename
}

// checkEntryID rejects ids that would name a folder outside media/
func checkEntryID(id string) error {
	if !safePart(strings.TrimSpace(id)) {
		return application.ErrInvalidID
	}
	return nil
}

func checkFilename(name string) error {
	if !safePart(name) {
		return &application.ValidationError{
			Field:   "filename",
			Message: fmt.Sprintf("invalid attachment name %q", name),
		}
	}
	return nil
}

// safePart reports whether s is usable as a single path element
func safePart(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00") && !strings.ContainsRune(s, filepath.Separator)
}

func keyToPathTransform(key string) *diskv.PathKey {
	dir, file, _ := strings.Cut(key, "/")
	return &diskv.PathKey{
		Path:     []string{dir},
		FileName: file,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}

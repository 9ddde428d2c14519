package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

// LegacyScanner registers file-backed vlogs found under the media
// directory. Earlier deployments wrote uploads straight to disk as
// {user_id}_{uuid}.mp4; scanning keeps those visible through the same
// store as inline uploads.
type LegacyScanner struct {
	MediaPath string
	DB        *gorm.DB
	Log       *zap.Logger
	Watcher   *fsnotify.Watcher
}

// Legacy file format: alice_3f2c7e9a-0b1d-4c5e-8f6a-7b8c9d0e1f2a.mp4
var legacyFileRegex = regexp.MustCompile(`^(.+)_([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\.mp4$`)

func NewLegacyScanner(mediaPath string, db *gorm.DB, log *zap.Logger) *LegacyScanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &LegacyScanner{
		MediaPath: mediaPath,
		DB:        db,
		Log:       log,
	}
}

// Start runs an initial full scan and then watches the media tree for
// files appearing later. The watcher goroutine lives for the process.
func (s *LegacyScanner) Start() {
	go s.ScanAll()

	var err error
	s.Watcher, err = fsnotify.NewWatcher()
	if err != nil {
		s.Log.Error("failed to create media watcher", zap.Error(err))
		return
	}

	go func() {
		for {
			select {
			case event, ok := <-s.Watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						s.Watcher.Add(event.Name)
						continue
					}
					s.tryRegister(event.Name)
				}
			case err, ok := <-s.Watcher.Errors:
				if !ok {
					return
				}
				s.Log.Warn("media watcher error", zap.Error(err))
			}
		}
	}()

	if err := s.Watcher.Add(s.MediaPath); err != nil {
		s.Log.Warn("failed to watch media path", zap.String("path", s.MediaPath), zap.Error(err))
	}

	// fsnotify is not recursive; walk and add subdirectories.
	filepath.Walk(s.MediaPath, func(path string, info os.FileInfo, err error) error {
		if info != nil && info.IsDir() {
			s.Watcher.Add(path)
		}
		return nil
	})
}

// ScanAll walks the media tree once and registers every legacy file not
// yet in the store. Re-running is idempotent.
func (s *LegacyScanner) ScanAll() {
	start := time.Now()

	var files []string
	err := filepath.Walk(s.MediaPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".mp4") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		s.Log.Error("media scan failed", zap.String("path", s.MediaPath), zap.Error(err))
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5)

	for _, f := range files {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			s.tryRegister(path)
		}(f)
	}

	wg.Wait()
	s.Log.Info("media scan complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("files", len(files)),
	)
}

// tryRegister inserts a file-backed vlog row for path unless one already
// exists for its ID. Files that don't match the legacy naming are ignored.
func (s *LegacyScanner) tryRegister(path string) {
	matches := legacyFileRegex.FindStringSubmatch(filepath.Base(path))
	if len(matches) != 3 {
		return
	}
	userID, vlogID := matches[1], strings.ToLower(matches[2])

	var existing models.Vlog
	err := s.DB.Where("vlog_id = ?", vlogID).First(&existing).Error
	if err == nil {
		return
	}
	if !gorm.IsRecordNotFoundError(err) {
		s.Log.Error("store lookup failed", zap.String("vlog_id", vlogID), zap.Error(err))
		return
	}

	// Best available upload time for a legacy file is its mtime.
	timestamp := time.Now().UTC().Format(isoLayout)
	if info, err := os.Stat(path); err == nil {
		timestamp = info.ModTime().UTC().Format(isoLayout)
	}

	v := models.Vlog{
		VlogID:    vlogID,
		UserID:    userID,
		Timestamp: timestamp,
		FilePath:  path,
	}
	if err := s.DB.Create(&v).Error; err != nil {
		s.Log.Error("failed to register legacy vlog", zap.String("path", path), zap.Error(err))
		return
	}
	s.Log.Info("registered legacy vlog",
		zap.String("vlog_id", vlogID),
		zap.String("user_id", userID),
		zap.String("path", path),
	)
}

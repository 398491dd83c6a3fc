// Package media keeps uploaded listing images and videos in memory and
// serves them under locally generated URLs.
package media

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/clock"
	"auction-front/utils"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes caps a single upload
const DefaultMaxBytes = 10 << 20

// URLPrefix is the path uploaded media is served under
const URLPrefix = "/media/"

// Kind is the class of media a listing accepts
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Media is an uploaded file
type Media struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	Data        []byte    `json:"-"`
}

// Store holds uploads in memory
type Store struct {
	mu       sync.RWMutex
	items    map[string]Media
	maxBytes int
	clock    clock.Clock
}

// NewStore creates a store that rejects uploads larger than maxBytes.
// A non-positive maxBytes uses DefaultMaxBytes.
func NewStore(maxBytes int, clk clock.Clock) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &Store{
		items:    make(map[string]Media),
		maxBytes: maxBytes,
		clock:    clk,
	}
}

// Save stores data after checking its detected content type matches kind
func (s *Store) Save(kind Kind, name string, data []byte) (Media, error) {
	if len(data) == 0 {
		return Media{}, fmt.Errorf("media: %w - empty %s upload", auctionerrors.ErrUnsupportedMedia, kind)
	}
	if len(data) > s.maxBytes {
		return Media{}, fmt.Errorf("media: %w - %d bytes, limit %d", auctionerrors.ErrMediaTooLarge, len(data), s.maxBytes)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), string(kind)+"/") {
		return Media{}, fmt.Errorf("media: %w - %s is not an %s", auctionerrors.ErrUnsupportedMedia, mtype.String(), kind)
	}

	id := utils.GenerateID()
	m := Media{
		ID:          id,
		Name:        name,
		Kind:        kind,
		ContentType: mtype.String(),
		Size:        len(data),
		URL:         URLPrefix + id,
		CreatedAt:   s.clock.Now().UTC(),
		Data:        append([]byte(nil), data...),
	}

	s.mu.Lock()
	s.items[id] = m
	s.mu.Unlock()

	m.Data = append([]byte(nil), m.Data...)

	utils.Debug("Media stored", map[string]any{
		"media_id":     id,
		"content_type": m.ContentType,
		"size":         m.Size,
	})
	return m, nil
}

// Get returns a stored upload. The returned Data is the caller's own copy.
func (s *Store) Get(id string) (Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.items[id]
	if !ok {
		return Media{}, fmt.Errorf("media %s: %w", id, auctionerrors.ErrMediaNotFound)
	}
	m.Data = append([]byte(nil), m.Data...)
	return m, nil
}

// Len returns how many uploads are stored
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

package content

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	readability "github.com/go-shiori/go-readability"
)

// categoryFolders maps categories to the folder names the conversion
// pipeline writes. Order matters: it fixes entry insertion order, which
// the search tie-break relies on.
var categoryFolders = []struct {
	category Category
	folder   string
}{
	{CategoryQnA, "크롤링_QnA"},
	{CategorySelftest, "크롤링_selftest_MD"},
	{CategoryProduct, "크롤링_Products"},
}

// Store indexes the converted content collection. It is read-only after
// Load, so concurrent use needs no locking.
type Store struct {
	entries []Entry
	byKey   map[string]Entry
	logger  *slog.Logger
}

type entryMeta struct {
	Images []imageMeta `toml:"images"`
}

type imageMeta struct {
	URL       string `toml:"url"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	SizeBytes int64  `toml:"size_bytes"`
}

// Load scans dir for converted entries and builds the index.
// staticBaseURL anchors the external web link of each entry; it may be
// empty for deployments that serve no static content.
func Load(log *slog.Logger, dir, staticBaseURL string) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "content"))

	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, dir)
	}

	s := &Store{byKey: make(map[string]Entry), logger: log}

	for _, cf := range categoryFolders {
		catDir := filepath.Join(dir, cf.folder)
		items, err := os.ReadDir(catDir)
		if err != nil {
			continue
		}
		for _, item := range items {
			if !item.IsDir() {
				continue
			}
			title := item.Name()
			entryDir := filepath.Join(catDir, title)
			indexFile := filepath.Join(entryDir, "index.html")
			if _, err := os.Stat(indexFile); err != nil {
				continue
			}
			entry, err := loadEntry(cf.category, cf.folder, title, entryDir, indexFile, staticBaseURL)
			if err != nil {
				log.Warn("skip entry", slog.String("title", title), slog.Any("error", err))
				continue
			}
			key := entryKey(entry.Category, entry.ID)
			if _, exists := s.byKey[key]; exists {
				log.Warn("duplicate entry id, keeping first", slog.String("category", string(entry.Category)), slog.String("id", entry.ID))
				continue
			}
			s.byKey[key] = entry
			s.entries = append(s.entries, entry)
		}
	}

	if len(s.entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, dir)
	}
	log.Info("content indexed", slog.Int("entries", len(s.entries)))
	return s, nil
}

func loadEntry(category Category, folder, title, entryDir, indexFile, staticBaseURL string) (Entry, error) {
	raw, err := os.ReadFile(indexFile)
	if err != nil {
		return Entry{}, fmt.Errorf("read index: %w", err)
	}

	webPath := "/" + url.PathEscape(folder) + "/" + url.PathEscape(title) + "/index.html"
	pageURL := &url.URL{Path: "/" + folder + "/" + title + "/index.html"}

	entry := Entry{
		ID:       Slugify(title),
		Category: category,
		Title:    title,
		Path:     webPath,
		BodyHTML: string(raw),
		Summary:  summaryPlaceholder,
	}
	if staticBaseURL != "" {
		entry.Link = staticBaseURL + webPath
	}

	article, err := readability.FromReader(strings.NewReader(string(raw)), pageURL)
	if err == nil {
		if summary := Summarize(article.TextContent); summary != "" {
			entry.Summary = summary
		}
		if article.Image != "" {
			entry.Images = append(entry.Images, ImageRef{URL: article.Image})
		}
	}

	if meta, ok := readMeta(entryDir); ok {
		images := make([]ImageRef, 0, len(meta.Images))
		for _, img := range meta.Images {
			if strings.TrimSpace(img.URL) == "" {
				continue
			}
			images = append(images, ImageRef{
				URL:       img.URL,
				Width:     img.Width,
				Height:    img.Height,
				SizeBytes: img.SizeBytes,
			})
		}
		if len(images) > 0 {
			entry.Images = images
		}
	}

	return entry, nil
}

func readMeta(entryDir string) (entryMeta, bool) {
	metaFile := filepath.Join(entryDir, "meta.toml")
	if _, err := os.Stat(metaFile); err != nil {
		return entryMeta{}, false
	}
	var meta entryMeta
	if _, err := toml.DecodeFile(metaFile, &meta); err != nil {
		return entryMeta{}, false
	}
	return meta, true
}

// Lookup returns the entry with the given category and id.
func (s *Store) Lookup(category Category, id string) (Entry, error) {
	entry, ok := s.byKey[entryKey(category, strings.TrimSpace(id))]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrEntryNotFound, category, id)
	}
	return entry, nil
}

// ByCategory returns entries of one category in load order.
func (s *Store) ByCategory(category Category) []Entry {
	var out []Entry
	for _, entry := range s.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// Entries returns all entries in load order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of indexed entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func entryKey(category Category, id string) string {
	return string(category) + "/" + id
}

// Slugify derives a stable entry id from a directory title. Letters and
// digits (including Hangul) are kept, whitespace runs collapse to one
// hyphen, everything else is dropped.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}

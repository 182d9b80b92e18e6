package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/storage"
)

// DefaultWords is used when no word list can be loaded
var DefaultWords = []string{"CASA", "HOLA", "SOL", "PAPA", "MAMA", "GATO", "PERRO"}

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	sorted []string
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := Normalize(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWithFallback loads the word list at path, falling back to DefaultWords
// when the file cannot be read. It only fails if storage is unavailable.
func (s *Service) LoadWithFallback(ctx context.Context, path string) error {
	err := s.LoadFromFile(ctx, path)
	if err == nil {
		s.logger.Info("dictionary loaded",
			slog.String("path", path),
			slog.Int("word_count", s.WordCount()),
		)
		return nil
	}

	s.logger.Warn("failed to load dictionary, using built-in word set",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
	if err := s.storage.SaveDictionaryWords(ctx, DefaultWords); err != nil {
		return err
	}
	return s.loadWords(DefaultWords)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		if normalized := Normalize(strings.TrimSpace(word)); normalized != "" {
			s.words[normalized] = struct{}{}
		}
	}
	// Storage may return words in any order; keep a stable listing
	s.sorted = lo.Keys(s.words)
	slices.Sort(s.sorted)
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary.
// The word is normalized before lookup.
func (s *Service) IsValidWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[Normalize(word)]
	return ok
}

// Candidates returns the words whose rune length lies in [minLen, maxLen],
// sorted alphabetically
func (s *Service) Candidates(minLen, maxLen int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.sorted, func(word string, _ int) bool {
		n := utf8.RuneCountInString(word)
		return n >= minLen && n <= maxLen
	})
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	Candidates(minLen, maxLen int) []string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWithFallback(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded

package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/recoverly/recoverly/internal/markdown"
	"github.com/recoverly/recoverly/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
)

type lessonMeta struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Category        string `yaml:"category"`
	Order           int    `yaml:"order"`
	DurationMinutes int    `yaml:"duration_minutes"`
}

// LessonService serves the lesson catalog from markdown files under
// <contentPath>/lessons. The file name without extension is the lesson id.
type LessonService struct {
	parser      *markdown.Parser
	contentPath string

	mu      sync.RWMutex
	lessons []*model.Lesson
	byID    map[string]*model.Lesson
}

func NewLessonService(contentPath string) *LessonService {
	return &LessonService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		byID:        map[string]*model.Lesson{},
	}
}

// Load (re)reads the catalog. A missing lessons directory yields an empty catalog.
func (s *LessonService) Load() error {
	lessonsPath := filepath.Join(s.contentPath, "lessons")

	files, err := filepath.Glob(filepath.Join(lessonsPath, "*.md"))
	if err != nil {
		return err
	}

	lessons := make([]*model.Lesson, 0, len(files))
	byID := make(map[string]*model.Lesson, len(files))
	for _, file := range files {
		lesson, err := s.loadLesson(file)
		if err != nil {
			return fmt.Errorf("failed to load lesson %s: %w", filepath.Base(file), err)
		}
		lessons = append(lessons, lesson)
		byID[lesson.ID] = lesson
	}

	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return lessons[i].ID < lessons[j].ID
	})

	s.mu.Lock()
	s.lessons = lessons
	s.byID = byID
	s.mu.Unlock()

	slog.Info("lessons loaded", "count", len(lessons), "path", lessonsPath)
	return nil
}

func (s *LessonService) loadLesson(path string) (*model.Lesson, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta lessonMeta
	htmlContent, err := s.parser.Parse(content, &meta)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filepath.Base(path), ".md")
	title := meta.Title
	if title == "" {
		title = titleFromSlug(id)
	}

	return &model.Lesson{
		ID:              id,
		Title:           title,
		Description:     meta.Description,
		Category:        meta.Category,
		Order:           meta.Order,
		DurationMinutes: meta.DurationMinutes,
		Content:         string(content),
		HTMLContent:     string(htmlContent),
	}, nil
}

// List returns lessons without their rendered bodies.
func (s *LessonService) List() []model.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lessons := make([]model.Lesson, 0, len(s.lessons))
	for _, lesson := range s.lessons {
		summary := *lesson
		summary.Content = ""
		summary.HTMLContent = ""
		lessons = append(lessons, summary)
	}
	return lessons
}

func (s *LessonService) ByID(id string) (*model.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lesson, ok := s.byID[id]
	if !ok {
		return nil, ErrLessonNotFound
	}
	copied := *lesson
	return &copied, nil
}

func (s *LessonService) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok
}

func titleFromSlug(slug string) string {
	words := strings.ReplaceAll(slug, "-", " ")
	words = strings.ReplaceAll(words, "_", " ")
	return cases.Title(language.English).String(words)
}

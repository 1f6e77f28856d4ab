package usecase

import (
	"context"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
	"sync"
)

// LoaderState is the lifecycle of one gallery load. Loaded is terminal.
type LoaderState string

const (
	LoaderIdle    LoaderState = "IDLE"
	LoaderLoading LoaderState = "LOADING"
	LoaderLoaded  LoaderState = "LOADED"
)

// GalleryLoader fetches one collection exactly once and keeps the result for
// the rest of the page visit. A failed fetch is logged and yields an empty
// gallery, indistinguishable from an empty collection for the caller.
type GalleryLoader[T domain.GalleryItem] struct {
	collection string
	fetch      func(ctx context.Context) ([]T, error)

	once  sync.Once
	mu    sync.Mutex
	state LoaderState
	items []T
	err   error
}

func NewGalleryLoader[T domain.GalleryItem](collection string, fetch func(ctx context.Context) ([]T, error)) *GalleryLoader[T] {
	return &GalleryLoader[T]{
		collection: collection,
		fetch:      fetch,
		state:      LoaderIdle,
	}
}

// Load runs the fetch on first call; later calls return the same items
// without touching the store.
func (l *GalleryLoader[T]) Load(ctx context.Context) []T {
	l.once.Do(func() {
		l.setState(LoaderLoading)

		items, err := l.fetch(ctx)
		if err != nil {
			logger.Log.Error("Error loading "+l.collection, "collection", l.collection, "error", err)
			items = nil
		}
		if items == nil {
			items = []T{}
		}

		l.mu.Lock()
		l.items = items
		l.err = err
		l.state = LoaderLoaded
		l.mu.Unlock()
	})

	return l.Items()
}

func (l *GalleryLoader[T]) setState(s LoaderState) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

func (l *GalleryLoader[T]) State() LoaderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Items returns a copy of the loaded sequence (nil before Load).
func (l *GalleryLoader[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.items == nil {
		return nil
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Err is the swallowed fetch error, for operators and tests only.
func (l *GalleryLoader[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// GalleryUsecase serves the two portfolio galleries. Every call is one page
// visit and therefore one store round trip.
type GalleryUsecase interface {
	ListPhotos(ctx context.Context) []domain.Photo
	ListAutomations(ctx context.Context) []domain.Automation
}

type galleryUsecase struct {
	photoRepo      domain.PhotoRepository
	automationRepo domain.AutomationRepository
}

func NewGalleryUsecase(photoRepo domain.PhotoRepository, automationRepo domain.AutomationRepository) GalleryUsecase {
	return &galleryUsecase{
		photoRepo:      photoRepo,
		automationRepo: automationRepo,
	}
}

func (uc *galleryUsecase) NewPhotoLoader() *GalleryLoader[domain.Photo] {
	return NewGalleryLoader(domain.CollectionPhotos, uc.photoRepo.FetchAll)
}

func (uc *galleryUsecase) NewAutomationLoader() *GalleryLoader[domain.Automation] {
	return NewGalleryLoader(domain.CollectionAutomations, uc.automationRepo.FetchAll)
}

func (uc *galleryUsecase) ListPhotos(ctx context.Context) []domain.Photo {
	return uc.NewPhotoLoader().Load(ctx)
}

func (uc *galleryUsecase) ListAutomations(ctx context.Context) []domain.Automation {
	return uc.NewAutomationLoader().Load(ctx)
}

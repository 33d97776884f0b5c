package provider

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"mensahub/internal/icons"
)

type PhotoStore interface {
	Overrides(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, providerID string, url string) error
}

type Storage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

// Service assembles the provider listing: decoded documents plus icon,
// current opening status and photo override. photos and storage may be nil
// for deployments without Postgres or object storage (the bot, the worker);
// uploads then report not configured and overrides are skipped.
type Service struct {
	repo    Repository
	photos  PhotoStore
	icons   *icons.Table
	storage Storage
	now     func() time.Time
}

func NewService(
	repo Repository,
	photos PhotoStore,
	iconTable *icons.Table,
	storage Storage,
) *Service {
	return &Service{
		repo:    repo,
		photos:  photos,
		icons:   iconTable,
		storage: storage,
		now:     time.Now,
	}
}

// --------------------------------------------------
// List providers for a location
// --------------------------------------------------
func (s *Service) List(
	ctx context.Context,
	location string,
	category string,
) ([]*FoodProvider, error) {

	providers, err := s.repo.ListByLocation(ctx, location, category)
	if err != nil {
		return nil, err
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Name < providers[j].Name
	})

	overrides, err := s.photoOverrides(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, p := range providers {
		s.decorate(p, overrides, now)
	}

	return providers, nil
}

// --------------------------------------------------
// Single provider
// --------------------------------------------------
func (s *Service) Get(
	ctx context.Context,
	id string,
) (*FoodProvider, error) {

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	overrides, err := s.photoOverrides(ctx)
	if err != nil {
		return nil, err
	}

	s.decorate(p, overrides, s.now())
	return p, nil
}

// --------------------------------------------------
// Admin photo override upload
// --------------------------------------------------
func (s *Service) UploadPhoto(
	ctx context.Context,
	providerID string,
	file *multipart.FileHeader,
) (string, error) {

	if s.storage == nil || s.photos == nil {
		return "", errors.New("photo uploads are not configured")
	}

	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"providers/%s/%s%s",
		providerID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.photos.Save(ctx, providerID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *Service) photoOverrides(ctx context.Context) (map[string]string, error) {
	if s.photos == nil {
		return nil, nil
	}
	return s.photos.Overrides(ctx)
}

func (s *Service) decorate(
	p *FoodProvider,
	overrides map[string]string,
	now time.Time,
) {
	p.Icon = s.icons.Lookup(p.Type, p.Name, p.Location)
	p.OpeningHoursText = OpeningStatus(p.OpeningHours, now)
	if url, ok := overrides[p.ID]; ok {
		p.Photo = url
	}
}

package favorites

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"medishare-client/internal/api"
	"medishare-client/internal/logger"
)

// favoriteEntry wraps the populated equipment record the API returns per
// favorite.
type favoriteEntry struct {
	Equipment *struct {
		ID string `json:"_id"`
	} `json:"equipment"`
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// List returns the ids of the equipment the user has favorited. Entries
// whose equipment reference is gone are skipped.
func (s *Service) List(ctx context.Context) (map[string]bool, error) {
	var entries []favoriteEntry
	if err := s.api.Get(ctx, "/favorites", &entries); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	ids := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Equipment == nil || e.Equipment.ID == "" {
			logger.FromCtx(ctx).Warn("favorite without equipment reference, skipping")
			continue
		}
		ids[e.Equipment.ID] = true
	}
	return ids, nil
}

func (s *Service) Add(ctx context.Context, equipmentID string) error {
	if err := s.api.Post(ctx, "/favorites/"+equipmentID, nil, nil); err != nil {
		return fmt.Errorf("add favorite %s: %w", equipmentID, err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, equipmentID string) error {
	if err := s.api.Delete(ctx, "/favorites/"+equipmentID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", equipmentID, err)
	}
	return nil
}

// Toggle flips the favorite state and returns the new state.
func (s *Service) Toggle(ctx context.Context, equipmentID string, isFavorite bool) (bool, error) {
	if isFavorite {
		if err := s.Remove(ctx, equipmentID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, equipmentID); err != nil {
		return false, err
	}
	logger.FromCtx(ctx).Debug("favorite added", zap.String("equipment_id", equipmentID))
	return true, nil
}

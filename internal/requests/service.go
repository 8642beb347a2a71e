package requests

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medishare-client/internal/api"
	"medishare-client/internal/logger"
)

// Service fetches the owner's incoming requests and pushes status
// transitions to the API.
type Service struct {
	api *api.Client
	now func() time.Time
}

func NewService(client *api.Client) *Service {
	return &Service{api: client, now: time.Now}
}

// List fetches all orders addressed to the current owner's equipment and
// projects them into the read model. Orders with no equipment reference
// are dropped.
func (s *Service) List(ctx context.Context) ([]RentalRequest, error) {
	var orders []apiOrder
	if err := s.api.Get(ctx, "/orders/owner", &orders); err != nil {
		return nil, fmt.Errorf("list rental requests: %w", err)
	}

	now := s.now()
	reqs := make([]RentalRequest, 0, len(orders))
	for _, o := range orders {
		req := mapOrder(o, now)
		if req == nil {
			logger.FromCtx(ctx).Warn("order missing equipment data, dropping",
				zap.String("order_id", o.ID))
			continue
		}
		reqs = append(reqs, *req)
	}
	return reqs, nil
}

// UpdateStatus requests the pending -> approved|rejected transition.
func (s *Service) UpdateStatus(ctx context.Context, id string, target Status) error {
	body := map[string]string{"status": string(target)}
	if err := s.api.Put(ctx, "/orders/"+id+"/status", body, nil); err != nil {
		return fmt.Errorf("update request %s status: %w", id, err)
	}
	return nil
}

package equipment

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"medishare-client/internal/api"
)

// Service covers browsing for renters and listing management for owners.
type Service struct {
	api       *api.Client
	assetBase string
}

func NewService(client *api.Client, assetBase string) *Service {
	return &Service{api: client, assetBase: assetBase}
}

func (s *Service) List(ctx context.Context) ([]Equipment, error) {
	var raw []apiEquipment
	if err := s.api.Get(ctx, "/equipment", &raw); err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	items := make([]Equipment, 0, len(raw))
	for _, r := range raw {
		items = append(items, mapEquipment(r, s.assetBase))
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Equipment, error) {
	var raw apiEquipment
	if err := s.api.Get(ctx, "/equipment/"+id, &raw); err != nil {
		return nil, fmt.Errorf("get equipment %s: %w", id, err)
	}
	eq := mapEquipment(raw, s.assetBase)
	return &eq, nil
}

// Create publishes a new listing. The image travels in the same
// multipart request as the form fields.
func (s *Service) Create(ctx context.Context, input Input, image *api.FilePart) (*Equipment, error) {
	var raw apiEquipment
	err := s.api.PostMultipart(ctx, "/equipment", inputFields(input), imageParts(image), &raw)
	if err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	eq := mapEquipment(raw, s.assetBase)
	return &eq, nil
}

func (s *Service) Update(ctx context.Context, id string, input Input, image *api.FilePart) (*Equipment, error) {
	var raw apiEquipment
	err := s.api.Multipart(ctx, http.MethodPut, "/equipment/"+id, inputFields(input), imageParts(image), &raw)
	if err != nil {
		return nil, fmt.Errorf("update equipment %s: %w", id, err)
	}
	eq := mapEquipment(raw, s.assetBase)
	return &eq, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/equipment/"+id); err != nil {
		return fmt.Errorf("delete equipment %s: %w", id, err)
	}
	return nil
}

func inputFields(input Input) map[string]string {
	return map[string]string{
		"name":         input.Name,
		"category":     input.Category,
		"description":  input.Description,
		"price":        strconv.FormatFloat(input.Price, 'f', -1, 64),
		"rentalPeriod": string(input.RentalPeriod),
		"condition":    input.Condition,
		"availability": input.Availability,
		"location":     input.Location,
	}
}

func imageParts(image *api.FilePart) []api.FilePart {
	if image == nil {
		return nil
	}
	return []api.FilePart{*image}
}

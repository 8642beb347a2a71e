package user

import (
	"context"
	"fmt"
	"strings"

	"medishare-client/internal/api"
)

// Contact is the subset of a user record shown when putting a renter and
// an owner in touch.
type Contact struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DisplayName prefers the split name fields over the combined one.
func (c *Contact) DisplayName() string {
	full := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if full != "" {
		return full
	}
	return c.Name
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) Get(ctx context.Context, id string) (*Contact, error) {
	var contact Contact
	if err := s.api.Get(ctx, "/user/"+id, &contact); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &contact, nil
}

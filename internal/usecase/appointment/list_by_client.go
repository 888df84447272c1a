package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ListByClient struct {
	repo domain.Repository
}

func NewListByClient(repo domain.Repository) *ListByClient {
	return &ListByClient{repo: repo}
}

func (uc *ListByClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, httperr.Internal(fmt.Sprintf("Failed to fetch appointments: %v", err))
	}
	return aps, nil
}

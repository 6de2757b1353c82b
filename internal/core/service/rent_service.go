package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/metrics"
)

// ErrConstraintViolation is returned for date-ordering violations when the
// strict-dates policy is enabled.
var ErrConstraintViolation = errors.New("constraint violation")

// RentPolicy holds the configurable loan rules. StrictDates rejects a rent
// whose planned or actual return date precedes its rent date; it is off by
// default because the historical behavior enforced neither.
type RentPolicy struct {
	StrictDates bool
}

type RentService struct {
	repo   repository.RentRepository
	policy RentPolicy
	log    *zap.Logger
}

func NewRentService(repo repository.RentRepository, policy RentPolicy, log *zap.Logger) *RentService {
	return &RentService{repo: repo, policy: policy, log: log}
}

func (s *RentService) Create(ctx context.Context, rent entity.Rent) (entity.Rent, error) {
	if err := s.checkDates(rent); err != nil {
		return entity.Rent{}, err
	}

	created, err := s.repo.Create(ctx, rent)
	if err != nil {
		return entity.Rent{}, err
	}

	metrics.IncRentCreated()
	s.log.Info("rent created",
		zap.String("rent_id", created.ID.String()),
		zap.String("member_id", created.MemberID.String()),
		zap.Int("books", len(created.BookIDs)))
	return created, nil
}

func (s *RentService) Get(ctx context.Context, id uuid.UUID) (entity.Rent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RentService) Update(ctx context.Context, rent entity.Rent) (entity.Rent, error) {
	if err := s.checkDates(rent); err != nil {
		return entity.Rent{}, err
	}
	return s.repo.Update(ctx, rent)
}

func (s *RentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *RentService) List(ctx context.Context, params query.Params) (query.Page[entity.Rent], error) {
	spec, err := query.Build(params, query.RentFields, query.RentDefaultSort)
	if err != nil {
		return query.Page[entity.Rent]{}, err
	}
	return s.repo.List(ctx, spec)
}

func (s *RentService) checkDates(rent entity.Rent) error {
	if !s.policy.StrictDates {
		return nil
	}
	if rent.PlannedReturnDate.Before(rent.RentDate) {
		return fmt.Errorf("%w: planned return date precedes rent date", ErrConstraintViolation)
	}
	if rent.ReturnDate != nil && rent.ReturnDate.Before(rent.RentDate) {
		return fmt.Errorf("%w: return date precedes rent date", ErrConstraintViolation)
	}
	return nil
}

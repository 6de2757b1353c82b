package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

type MemberService struct {
	repo  repository.MemberRepository
	rents repository.RentRepository
}

func NewMemberService(repo repository.MemberRepository, rents repository.RentRepository) *MemberService {
	return &MemberService{repo: repo, rents: rents}
}

func (s *MemberService) Create(ctx context.Context, member entity.Member) (entity.Member, error) {
	return s.repo.Create(ctx, member)
}

func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (entity.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) Update(ctx context.Context, member entity.Member) (entity.Member, error) {
	return s.repo.Update(ctx, member)
}

func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *MemberService) List(ctx context.Context, params query.Params) (query.Page[entity.Member], error) {
	spec, err := query.Build(params, query.MemberFields, query.MemberDefaultSort)
	if err != nil {
		return query.Page[entity.Member]{}, err
	}
	return s.repo.List(ctx, spec)
}

// ListRents lists the member's loans, filtered and sorted by rent dates.
func (s *MemberService) ListRents(ctx context.Context, memberID uuid.UUID, params query.Params) (query.Page[entity.Rent], error) {
	if _, err := s.repo.GetByID(ctx, memberID); err != nil {
		return query.Page[entity.Rent]{}, err
	}
	spec, err := query.Build(params, query.RentFields, query.RentDefaultSort)
	if err != nil {
		return query.Page[entity.Rent]{}, err
	}
	return s.rents.ListByMember(ctx, memberID, spec)
}

package labor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	profiles LaborProfileRepository
}

func NewService(profiles LaborProfileRepository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.LaborProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateProfile replaces wage, experience and availability. Verification is
// set externally and never touched here.
func (s *Service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.LaborProfile, error) {
	if req.DailyWage < 0 || req.ExperienceYears < 0 {
		return nil, ErrValidation
	}

	p, err := s.GetProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	p.DailyWage = req.DailyWage
	p.ExperienceYears = req.ExperienceYears
	p.IsAvailable = req.IsAvailable

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddSkill appends a skill, preserving listing order and rejecting
// duplicates case-insensitively.
func (s *Service) AddSkill(ctx context.Context, userID int64, skill string) (*domain.LaborProfile, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, ErrValidation
	}

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range p.Skills {
		if strings.EqualFold(existing, skill) {
			return nil, ErrSkillExists
		}
	}

	p.Skills = append(p.Skills, skill)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) RemoveSkill(ctx context.Context, userID int64, skill string) (*domain.LaborProfile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(p.Skills))
	found := false
	for _, existing := range p.Skills {
		if strings.EqualFold(existing, skill) {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return nil, ErrSkillNotFound
	}

	p.Skills = kept
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SetAvailability(ctx context.Context, userID int64, available bool) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}
	return s.profiles.SetAvailability(ctx, userID, available)
}

// ListAvailable is the public laborer directory, verified profiles first.
func (s *Service) ListAvailable(ctx context.Context) ([]LaborerListing, error) {
	rows, err := s.profiles.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LaborerListing, 0, len(rows))
	for _, r := range rows {
		skills := []string{}
		if len(r.Skills) > 0 {
			_ = json.Unmarshal(r.Skills, &skills)
		}
		var phone string
		if r.Phone != nil {
			phone = *r.Phone
		}
		out = append(out, LaborerListing{
			UserID:          r.UserID,
			Name:            r.Name,
			Phone:           phone,
			Skills:          skills,
			DailyWage:       r.DailyWage,
			ExperienceYears: r.ExperienceYears,
			IsAvailable:     r.IsAvailable,
			IsVerified:      r.IsVerified,
		})
	}
	return out, nil
}

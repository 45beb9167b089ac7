package service

import (
	"context"
	"strings"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// ProfileService manages the editable account details.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// ProfileDependencies bundles profile requirements.
type ProfileDependencies struct {
	ProfileRepo repository.ProfileRepository
}

// ProfileInput is the profile form.
type ProfileInput struct {
	Name     string
	Email    string
	Bio      string
	Location string
	Website  string
	Phone    string
}

// NewProfileService constructs the service.
func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{profiles: deps.ProfileRepo}
}

// DefaultProfile is shown until the user saves their own details.
func DefaultProfile(user domain.User) domain.Profile {
	return domain.Profile{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Bio:      "Digital product enthusiast and tech lover.",
		Location: "San Francisco, CA",
		Website:  "https://example.com",
		Phone:    "+1 (555) 123-4567",
	}
}

// Get returns the stored profile or the default one.
func (s *ProfileService) Get(ctx context.Context, user domain.User) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			p := DefaultProfile(user)
			return &p, nil
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// Update saves the profile. Login credentials are unaffected.
func (s *ProfileService) Update(ctx context.Context, user domain.User, input ProfileInput) (*domain.Profile, error) {
	if err := required(field{"name", input.Name}, field{"email", input.Email}); err != nil {
		return nil, err
	}
	profile := &domain.Profile{
		UserID:   user.ID,
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Bio:      input.Bio,
		Location: input.Location,
		Website:  input.Website,
		Phone:    input.Phone,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

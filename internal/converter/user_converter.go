package converter

import (
	"github.com/sanish-bhagat/Health-Sathi/internal/delivery/dto"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		Specialization: user.Specialization,
		BloodGroup:     user.BloodGroup,
		Age:            user.Age,
		Height:         user.Height,
		Weight:         user.Weight,
		Phone:          user.Phone,
		DOB:            user.DOB,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// ProfileUpdateToFields flattens a partial profile update into the
// column map consumed by MergeUpdate. Only the mutable profile columns
// can appear here; identity columns (id, email, role) are not part of
// the request shape at all.
func ProfileUpdateToFields(req *dto.UpdateProfileRequest) map[string]any {
	fields := make(map[string]any)
	if req == nil {
		return fields
	}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.BloodGroup != nil {
		fields["blood_group"] = *req.BloodGroup
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DOB != nil {
		fields["dob"] = *req.DOB
	}

	return fields
}

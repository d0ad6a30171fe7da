package dto

// UpdateProfileRequest is a partial update: nil fields are left
// untouched by the merge, set fields overwrite the stored value.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Specialization *string `json:"specialization,omitempty"`
	BloodGroup     *string `json:"blood_group,omitempty"`
	Age            *string `json:"age,omitempty"`
	Height         *string `json:"height,omitempty"`
	Weight         *string `json:"weight,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	DOB            *string `json:"dob,omitempty"`
}

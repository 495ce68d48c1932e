package request

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty"`
	FirstName string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Address   string `json:"address" binding:"omitempty"`
	IsActive  *bool  `json:"is_active" binding:"omitempty"`
}

// UpdateProfileRequest represents a request to update user's own profile
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName        string `json:"last_name" binding:"omitempty,min=1,max=100"`
	DateOfBirth     string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender          string `json:"gender" binding:"omitempty,oneof=male female other"`
	Address         string `json:"address" binding:"omitempty"`
	ProfileImageURL string `json:"profile_image_url" binding:"omitempty,url"`
}

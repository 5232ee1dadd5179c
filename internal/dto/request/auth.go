package request

type RegisterRequest struct {
	Phone           string  `json:"phone" validate:"required,usphone"`
	Password        string  `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string  `json:"first_name" validate:"required,max=100"`
	LastName        string  `json:"last_name" validate:"required,max=100"`
	DateOfBirth     string  `json:"date_of_birth" validate:"required,mdydate"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Gender          *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,usphone"`
	Password string `json:"password" validate:"required"`
}

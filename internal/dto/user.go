package dto

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=2,max=64"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserUpdateRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	Username  string `json:"username" binding:"required,min=2,max=64"`
}

type ChangePasswordRequest struct {
	CurrentPassword  string `json:"currentPassword" binding:"required"`
	NewPassword      string `json:"newPassword" binding:"required,min=8,nefield=CurrentPassword"`
	NewPasswordAgain string `json:"newPasswordAgain" binding:"required,eqfield=NewPassword"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package dto

type RegisterForm struct {
	Username string `form:"username" validate:"required,max=80"`
	Email    string `form:"email" validate:"required,max=120"`
	Phone    string `form:"phone" validate:"required,max=15"`
	Password string `form:"password" validate:"required"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

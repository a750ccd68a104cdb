package dto

type IDParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

type EmailParam struct {
	Email string `uri:"email" binding:"required,email"`
}

type EmailQuery struct {
	Email string `form:"email" binding:"required,email"`
}

package dto

// ListingForm is the text part of the post_flat form. Rent stays a string
// so that a non-numeric value surfaces as a conversion error, not a bind error.
type ListingForm struct {
	Title        string `form:"title" validate:"required,max=200"`
	FlatType     string `form:"flat_type" validate:"required"`
	Location     string `form:"location" validate:"required,max=200"`
	Rent         string `form:"rent" validate:"required"`
	Description  string `form:"description"`
	ContactName  string `form:"contact_name" validate:"required,max=100"`
	ContactPhone string `form:"contact_phone" validate:"required,max=15"`
	ContactEmail string `form:"contact_email" validate:"required,max=120"`
	PostType     string `form:"post_type"`
}

// SearchQuery holds the /search parameters. Empty values mean "no filter".
type SearchQuery struct {
	Q        string `query:"q"`
	Type     string `query:"type"`
	PostType string `query:"post_type"`
}

package dto

// IdentityResponse echoes the authenticated identity carried by the token.
type IdentityResponse struct {
	User IdentityUser `json:"user"`
}

// IdentityUser is the user part of IdentityResponse.
type IdentityUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

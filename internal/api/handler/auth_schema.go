package handler

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// pageResponse describes a rendered page to the presentation layer, which is
// an external collaborator of this service.
type pageResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Route       string `json:"route"`
	Error       string `json:"error,omitempty"`
}

// File path: internal/api/types.go
package api

type chatRequest struct {
	Message string `json:"message"`
	Section string `json:"section"`
	UserID  string `json:"user_id,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type sectionsResponse struct {
	Sections []string `json:"sections"`
}

type credentialRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password,omitempty"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

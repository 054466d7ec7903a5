package http

import "calendar-assistant/internal/auth"

// userObj is the profile shape the frontend renders. Internal fields
// like the Google id stay out of responses.
type userObj struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type userResp struct {
	Success bool    `json:"success"`
	User    userObj `json:"user"`
}

func newUserResp(out auth.UserOutput) userResp {
	return userResp{
		Success: true,
		User: userObj{
			ID:      out.User.ID,
			Email:   out.User.Email,
			Name:    out.User.Name,
			Picture: out.User.Picture,
		},
	}
}

type logoutResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

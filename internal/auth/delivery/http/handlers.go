package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
	"calendar-assistant/pkg/scope"
)

// Login godoc
// @Summary     Start the Google OAuth login flow
// @Description Redirects the browser to Google's consent screen. After the
// @Description user grants access, Google redirects back to the callback.
// @Tags        Auth
// @Success     302 "Redirect to Google"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      /api/auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.uc.LoginURL(c.Request.Context()))
}

// Callback godoc
// @Summary     Finish the Google OAuth login flow
// @Description Exchanges the authorization code for tokens, upserts the user,
// @Description stores the encrypted refresh token, sets the session cookie and
// @Description redirects to the frontend dashboard. Failures redirect to the
// @Description frontend with ?error=auth_failed so the page can show a message.
// @Tags        Auth
// @Param       code query string true "Authorization code from Google"
// @Success     302 "Redirect to the frontend"
// @Failure     400 {object} errorResp "Missing authorization code"
// @Router      /api/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	// A denied consent screen comes back without a code.
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, errorResp{Error: "No authorization code provided"})
		return
	}

	out, err := h.uc.HandleCallback(ctx, auth.CallbackInput{Code: code})
	if err != nil {
		h.l.Errorf(ctx, "auth.Callback: %v", err)
		c.Redirect(http.StatusFound, h.frontendURL+"?error=auth_failed")
		return
	}

	// httpOnly keeps the token away from page scripts; Lax survives the
	// OAuth redirect while blocking cross-site POSTs.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(scope.CookieName, out.Token, int(h.sessionExpiry.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, h.frontendURL+"/dashboard")
}

// User godoc
// @Summary     Get the authenticated user's profile
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     404 {object} errorResp "Account no longer exists"
// @Failure     500 {object} errorResp
// @Router      /api/auth/user [GET]
func (h *handler) User(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.CurrentUser(ctx, sc)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, errorResp{Error: "User not found"})
			return
		}
		h.l.Errorf(ctx, "auth.User: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, newUserResp(out))
}

// Logout godoc
// @Summary     End the session
// @Description Expires the session cookie. The stored refresh token is kept so
// @Description the next login skips the consent screen.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	c.SetCookie(scope.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, logoutResp{
		Success: true,
		Message: "Logged out successfully",
	})
}

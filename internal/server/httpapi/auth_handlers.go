package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// handleLogin accepts form credentials (OAuth2 password flow style) and
// returns a bearer token. Unknown username and wrong password produce the
// same 401.
func (s *HTTPServer) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	token, err := s.users.Login(c.Request.Context(), username, password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (s *HTTPServer) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// handleLogout exists for client symmetry only: tokens are stateless and
// simply expire after their TTL.
func (s *HTTPServer) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

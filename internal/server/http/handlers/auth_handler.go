package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/server/http/dto"
)

// AuthHandler processes signup and signin.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	user, err := h.facade.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already Exists"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error in Signup"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SignUpResponse{
		Message: "User created Successfully",
		User:    toUserResponse(user),
	})
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and Password are required"})
		return
	}

	token, err := h.facade.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and Password are required"})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Credentials"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error in Signin"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{Message: "Signin Successful", Token: token})
}

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ship_catalog/internal/app/ds"
	"ship_catalog/internal/app/dto"
	"ship_catalog/internal/app/handler/middleware"
	"ship_catalog/internal/app/repository"
	"ship_catalog/internal/app/utils"
)

type UserHandler struct {
	Repository interface {
		RegisterUser(ctx context.Context, user ds.User) (ds.User, error)
		LoginUser(ctx context.Context, login, password string) (string, *ds.User, error)
		LogoutUser(ctx context.Context, userID int) error
		GetUserByID(ctx context.Context, userID int) (*ds.User, error)
		UpdateUser(ctx context.Context, user ds.User) error
		JWTKey() []byte
	}
}

// @Summary Register a new user
// @Description Register a catalog operator with login and password. New accounts are viewers.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "User info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} object "error: message"
// @Failure 409 {object} object "error: message"
// @Failure 500 {object} object "error: message"
// @Router /rest/users/register [post]
func (h *UserHandler) RegisterUserAPI(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.Repository.RegisterUser(ctx, req.ToUser())
	switch {
	case errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, repository.ErrPasswordRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logrus.WithError(err).Error("register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// @Summary Login user
// @Description Authenticate user, set session cookie and return JWT
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} object "error: message"
// @Failure 401 {object} object "error: message"
// @Failure 500 {object} object "error: message"
// @Router /rest/users/login [post]
func (h *UserHandler) LoginUserAPI(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	token, user, err := h.Repository.LoginUser(ctx, req.Login, req.Password)
	if errors.Is(err, repository.ErrBadCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("login user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	maxAge := 0
	if claims, err := utils.ParseJWT(h.Repository.JWTKey(), token); err == nil && claims.ExpiresAt != nil {
		maxAge = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.FromUser(*user)})
}

// @Summary Logout user
// @Description Clear session cookie and drop the stored session
// @Tags users
// @Produce json
// @Success 200 {object} object "message: string"
// @Failure 401 {object} object "error: message"
// @Router /rest/users/logout [post]
func (h *UserHandler) LogoutUserAPI(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.Repository.LogoutUser(ctx, userID); err != nil {
		logrus.WithError(err).Error("logout user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// @Summary Get user profile
// @Description Get profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} object "error: message"
// @Failure 500 {object} object "error: message"
// @Router /rest/users/profile [get]
func (h *UserHandler) GetUserProfileAPI(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.Repository.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("get profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(*user))
}

// @Summary Update user profile
// @Description Update profile of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.ProfileRequest true "Profile"
// @Success 200 {object} object "message: string"
// @Failure 400 {object} object "error: message"
// @Failure 401 {object} object "error: message"
// @Failure 500 {object} object "error: message"
// @Router /rest/users/profile [put]
func (h *UserHandler) UpdateUserProfileAPI(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.Repository.UpdateUser(ctx, ds.User{
		UserID:   userID,
		FIO:      req.FIO,
		Contacts: req.Contacts,
		Password: req.Password,
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

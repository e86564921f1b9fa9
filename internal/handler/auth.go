package handler

import (
	"errors"

	"github.com/ahosmi/content-dashboard/internal/auth"
	"github.com/ahosmi/content-dashboard/internal/repository"
	"github.com/ahosmi/content-dashboard/pkg"
	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/ahosmi/content-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
)

// Register creates a new user account
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("register bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	_, err = h.Repo.CreateUser(ctx, req.Username, req.Email, pwHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.BadRequest(c, "email already registered")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		// hide DB errors from clients
		response.BadRequest(c, "could not create user")
		return
	}

	response.CreatedMessage(c, "User created")
}

// Login verifies credentials and returns a bearer token with the user profile
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email)
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JwtSecret, user.ID, h.JwtTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginRes{
		Token: token,
		User:  model.UserRes{Username: user.Username, Email: user.Email},
	})
}

package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sitelog/client"
	"sitelog/config"
	"sitelog/middleware"
	"sitelog/session"
	"sitelog/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	api    *client.Client
	store  session.Store
	logger *log.Logger
}

func NewAuthController(api *client.Client, store session.Store, logger *log.Logger) *AuthController {
	return &AuthController{api: api, store: store, logger: logger}
}

// ShowLogin renders the login screen.
func (ac *AuthController) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", viewData(c, fiber.Map{
		"Title": "Login",
	}))
}

// Login checks credentials against the backend and opens a session. A
// failed attempt re-renders the login screen with a notice; the reason
// (bad credentials vs. unreachable backend) is folded into the message but
// never into the control flow.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	req := LoginRequest{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.FlashError(c, err.Error())
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		utils.FlashError(c, "email must be a valid email")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	user, token, err := ac.api.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": req.Email,
		}).WithError(err).Warn("login failed")
		utils.FlashError(c, loginFailureMessage(err))
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if user == nil {
		utils.FlashError(c, "invalid email or password")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sess := session.New(*user, token)
	if err := ac.store.Put(c.Context(), sess); err != nil {
		logrus.WithError(err).Error("failed to persist session")
		utils.FlashError(c, "something went wrong, please try again")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	middleware.SetSessionCookie(c, sess.ID, config.AppConfig.SessionTTL)
	ac.logger.Printf("user %s logged in (role=%s team=%s)", user.Email, user.Role, user.TeamID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout tears the session down. No backend call is involved; the token is
// simply forgotten.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if sess := middleware.CurrentSession(c); sess != nil {
		_ = ac.store.Delete(c.Context(), sess.ID)
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func loginFailureMessage(err error) string {
	if errors.Is(err, client.ErrNetwork) {
		return client.ErrNetwork.Message
	}
	if errors.Is(err, client.ErrAuthFailed) {
		return "invalid email or password"
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "invalid email or password"
}

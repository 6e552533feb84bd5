package http

import (
	"net/http"

	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/session.
func (s *Server) Login(ctx echo.Context) error {
	var body Login
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	token, err := s.sessions.Login(body.LoginID, body.Password)
	if err != nil {
		return s.fail(ctx, err, "Failed to log in")
	}

	var state SessionState
	if err = s.sessions.Do(token, func(sess *session.Session) error {
		state = toSessionState(sess)
		return nil
	}); err != nil {
		return s.fail(ctx, err, "Failed to log in")
	}

	return ctx.JSON(http.StatusCreated, SessionCreated{Token: token, Session: state})
}

// GetSession handles GET /api/v1/session.
func (s *Server) GetSession(ctx echo.Context) error {
	return s.withSession(ctx, func(*session.Session) error { return nil })
}

// Logout handles DELETE /api/v1/session.
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.sessions.Logout(sessionToken(ctx)); err != nil {
		return s.fail(ctx, err, "Failed to log out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Navigate handles POST /api/v1/session/navigate.
func (s *Server) Navigate(ctx echo.Context) error {
	var body Navigate
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	page, err := session.ParsePage(body.Page)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	return s.withSession(ctx, func(sess *session.Session) error {
		return sess.Navigate(page)
	})
}

// Back handles POST /api/v1/session/back.
func (s *Server) Back(ctx echo.Context) error {
	return s.withSession(ctx, func(sess *session.Session) error {
		sess.Back()
		return nil
	})
}

// OpenOrder handles POST /api/v1/session/open. Only the order's existence is checked.
func (s *Server) OpenOrder(ctx echo.Context) error {
	var body OpenOrder
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	kind, err := kindOf(body.Kind)
	if err != nil {
		return s.fail(ctx, err, "")
	}

	return s.withSession(ctx, func(sess *session.Session) error {
		if err := sess.Open(kind, body.ID); err != nil {
			return err
		}
		view, err := s.orderView(sess)
		if err != nil {
			return err
		}
		if _, err = view.Load(ctx.Request().Context()); err != nil {
			sess.Back()
			return err
		}
		return nil
	})
}

// ValidateOpenOrder handles POST /api/v1/session/view/validate.
func (s *Server) ValidateOpenOrder(ctx echo.Context) error {
	var result commands.ValidateOrderResult

	err := s.sessions.Do(sessionToken(ctx), func(sess *session.Session) error {
		view, err := s.orderView(sess)
		if err != nil {
			return err
		}
		result, err = view.Validate(ctx.Request().Context())
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to validate order")
	}

	return ctx.JSON(http.StatusOK, toValidateResult(result))
}

// AddOpenOrderLine handles POST /api/v1/session/view/lines.
func (s *Server) AddOpenOrderLine(ctx echo.Context) error {
	var body NewLine
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err, "")
	}

	var lineID kernel.UUID
	err := s.sessions.Do(sessionToken(ctx), func(sess *session.Session) error {
		view, err := s.orderView(sess)
		if err != nil {
			return err
		}
		lineID, err = view.AddLine(ctx.Request().Context(), body.Code, body.Name, body.Quantity)
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to add line")
	}

	return ctx.JSON(http.StatusCreated, CreatedLine{ID: lineID.String()})
}

// CancelOpenOrder handles POST /api/v1/session/view/cancel.
func (s *Server) CancelOpenOrder(ctx echo.Context) error {
	return s.withSession(ctx, func(sess *session.Session) error {
		view, err := s.orderView(sess)
		if err != nil {
			return err
		}
		view.Cancel()
		return nil
	})
}

func (s *Server) orderView(sess *session.Session) (*session.OrderView, error) {
	return session.NewOrderView(sess, s.getOrderHandler, s.validateHandler, s.addLineHandler)
}

// withSession runs fn on the caller's session and answers with the resulting state.
func (s *Server) withSession(ctx echo.Context, fn func(sess *session.Session) error) error {
	var state SessionState

	err := s.sessions.Do(sessionToken(ctx), func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		state = toSessionState(sess)
		return nil
	})
	if err != nil {
		return s.fail(ctx, err, "Session request failed")
	}

	return ctx.JSON(http.StatusOK, state)
}

func sessionToken(ctx echo.Context) string {
	return ctx.Request().Header.Get(sessionTokenHeader)
}

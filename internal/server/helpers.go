package server

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"nhaf/internal/config"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const (
	maxPaginationLimit = 100
)

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// optionalID is parseID for routes shared between create and update; a
// missing parameter yields 0.
func (s *Server) optionalID(c *fiber.Ctx, param string) (uint, error) {
	if c.Params(param) == "" {
		return 0, nil
	}
	return s.parseID(c, param)
}

// parseBody decodes the JSON body into dest or writes a 400.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}

// respondError maps a service error to its status code. Server-side failures
// are logged with the request context.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()), slog.String("error", err.Error()))
		if models.ErrorCode(err) == "" {
			err = models.NewInternalError(err)
		}
	}
	return models.RespondWithError(c, status, err)
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// paginated is the list envelope used by staff list endpoints.
func paginated[T any](items []T, total int64, p Pagination) fiber.Map {
	if items == nil {
		items = []T{}
	}
	return fiber.Map{
		"items":  items,
		"total":  total,
		"limit":  p.Limit,
		"offset": p.Offset,
	}
}

// publicMediaPrefix is the URL path the local storage backend is served under.
func publicMediaPrefix(cfg *config.Config) string {
	prefix := cfg.StoragePublicURL
	if u, err := url.Parse(prefix); err == nil && u.Host != "" {
		prefix = u.Path
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return "/media"
	}
	return prefix
}

// redirectPayment sends the payer's browser back to the public site with the
// outcome of a gateway callback.
func (s *Server) redirectPayment(c *fiber.Ctx, kind string, out *service.PaymentOutcome, err error) error {
	q := url.Values{}
	q.Set("type", kind)
	switch {
	case err != nil:
		middleware.Logger.WarnContext(c.UserContext(), "payment callback failed",
			slog.String("type", kind), slog.String("error", err.Error()))
		q.Set("status", string(models.PaymentStatusFailed))
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
			q.Set("reason", appErr.Message)
		} else {
			q.Set("reason", "Payment could not be verified.")
		}
	default:
		status := out.Status
		if status == "" {
			status = models.PaymentStatusFailed
		}
		q.Set("status", string(status))
		if out.Reason != "" {
			q.Set("reason", out.Reason)
		}
	}

	target := s.config.PaymentReturnURL
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return c.Redirect(target+sep+q.Encode(), fiber.StatusSeeOther)
}

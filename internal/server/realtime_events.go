package server

import (
	"context"
	"log/slog"
	"time"

	"nhaf/internal/middleware"
)

// touchAdminLastSeen records staff presence for the public chat widget's
// "online" indicator. It runs from hub callbacks, so it owns its context.
func (s *Server) touchAdminLastSeen(userID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.settingsRepo.TouchAdminLastSeen(ctx, time.Now()); err != nil {
		middleware.Logger.Warn("failed to record staff presence",
			slog.Uint64("user_id", uint64(userID)), slog.String("error", err.Error()))
	}
}

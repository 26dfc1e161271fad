package web

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

const flashKey = "flash"

const (
	flashSuccess = "success"
	flashError   = "error"
)

type flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (s *Server) addFlash(c *fiber.Ctx, kind string, messages ...string) error {
	sess := sessionFrom(c)
	var flashes []flash
	if raw, ok := sess.Get(flashKey).(string); ok {
		if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
			s.log.WithError(err).Warn("dropping broken flash messages")
			flashes = nil
		}
	}
	for _, msg := range messages {
		flashes = append(flashes, flash{Kind: kind, Message: msg})
	}
	raw, err := json.Marshal(flashes)
	if err != nil {
		return err
	}
	sess.Set(flashKey, string(raw))
	return nil
}

func (s *Server) popFlashes(c *fiber.Ctx) ([]flash, error) {
	sess := sessionFrom(c)
	raw, ok := sess.Get(flashKey).(string)
	if !ok {
		return nil, nil
	}
	sess.Delete(flashKey)
	var flashes []flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		s.log.WithError(err).Warn("dropping broken flash messages")
		return nil, nil
	}
	return flashes, nil
}

// redirectWith flashes messages and redirects to location.
func (s *Server) redirectWith(c *fiber.Ctx, location, kind string, messages ...string) error {
	if err := s.addFlash(c, kind, messages...); err != nil {
		return err
	}
	return c.Redirect(location)
}

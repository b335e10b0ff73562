package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenService owns the terminal screen lifecycle
type ScreenService struct {
	Screen tcell.Screen

	stopOnce sync.Once
}

// NewScreenService wraps screen; Start initializes it
func NewScreenService(screen tcell.Screen) *ScreenService {
	return &ScreenService{Screen: screen}
}

func (s *ScreenService) Name() string {
	return "terminal"
}

// Start puts the terminal in raw mode and hides the cursor
func (s *ScreenService) Start() error {
	if err := s.Screen.Init(); err != nil {
		return err
	}
	s.Screen.HideCursor()
	s.Screen.Clear()
	return nil
}

// Stop restores the terminal; only the first call has effect
func (s *ScreenService) Stop() error {
	s.stopOnce.Do(s.Screen.Fini)
	return nil
}

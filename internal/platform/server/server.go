package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

// Server は HTTP サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	app        *fiber.App
}

// New は指定されたアドレスで待ち受ける HTTP サーバーを構築します。
// register でルーティングを登録します。
func New(listenAddr string, readTimeout time.Duration, register func(*fiber.App)) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "kagokita-shift",
		ReadTimeout:           readTimeout,
		DisableStartupMessage: true,
	})

	if register != nil {
		register(app)
	}

	return &Server{
		listenAddr: listenAddr,
		app:        app,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると安全に停止します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.listenAddr)
	}()

	select {
	case <-ctx.Done():
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http on %s: %w", s.listenAddr, err)
		}
		return nil
	}
}

// Shutdown はサーバーを安全に停止します。
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}

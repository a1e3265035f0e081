package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/deckcode/internal/api"
	"github.com/youruser/deckcode/internal/config"
	"github.com/youruser/deckcode/internal/deckcode"
	"github.com/youruser/deckcode/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(log))

	codec := deckcode.New(
		deckcode.WithLegacy(cfg.AcceptLegacy),
		deckcode.WithMaxCodeLength(cfg.MaxCodeLength),
	)
	api.RegisterRoutes(r, api.NewServer(codec, log, cfg.MaxCodeLength, cfg.QRSize))

	log.Info("starting server",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.Bool("accept_legacy", cfg.AcceptLegacy),
		zap.Int("max_code_length", cfg.MaxCodeLength),
	)
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}

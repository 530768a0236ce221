package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/backend"
	"github.com/idilsaglam/tada/internal/ui"
	"github.com/idilsaglam/tada/internal/view/dom"
)

// session is one composed app: document, storage, state and controller.
type session struct {
	app     *app.App
	log     *log.Logger
	closers []io.Closer
}

// openSession wires the app from cfg. Interactive sessions never log to
// the terminal.
func openSession(cfg config.Config, interactive bool) (*session, error) {
	s := &session{}
	logger, logCloser, err := newLogger(cfg, interactive)
	if err != nil {
		return nil, err
	}
	s.log = logger
	if logCloser != nil {
		s.closers = append(s.closers, logCloser)
	}

	kv, kvCloser, err := backend.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	s.closers = append(s.closers, kvCloser)

	a, err := app.New(app.Config{
		Selector: cfg.Selector,
		Document: dom.NewPage(),
		Storage:  kv,
		Logger:   logger,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	a.Subscribe(func(todos []model.Todo) {
		logger.Debug("state changed", "count", len(todos))
	})
	s.app = a
	logger.Debug("session ready", "backend", cfg.Backend, "dir", cfg.DataDir, "items", len(a.State()))
	return s, nil
}

func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func withSession(opt Options, interactive bool, fn func(*session) int) int {
	s, err := openSession(opt.Config, interactive)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	code := fn(s)
	if err := s.Close(); err != nil {
		ui.Fail("close: " + err.Error())
		if code == 0 {
			code = 1
		}
	}
	return code
}

func newLogger(cfg config.Config, interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = log.InfoLevel
	}
	var (
		w      io.Writer = ui.Err
		closer io.Closer
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "tada",
		Level:           level,
		ReportTimestamp: cfg.LogFile != "",
	})
	return logger, closer, nil
}

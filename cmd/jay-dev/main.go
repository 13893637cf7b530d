package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jaykit/jay"
	"github.com/jaykit/jay/internal/devserver"
	"github.com/jaykit/jay/logging"
	"github.com/jaykit/jay/render"
)

func main() {
	cfg, err := devserver.Load()
	if err != nil {
		logging.NewDefault().Fatal("config", zap.Error(err))
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
	if err != nil {
		logging.NewDefault().Fatal("logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	srv := devserver.NewServer(cfg, demoApp(log), log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info("shutting down")
		if err := srv.Close(); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	case err := <-errChan:
		log.Fatal("server", zap.Error(err))
	}
}

// demoApp returns a factory building the bundled demo application:
// two pages, a shared header and footer, and a clock element that
// can be refreshed in place over the stream.
func demoApp(log *logging.Logger) devserver.AppFactory {
	return func() *render.App {
		app := render.New(render.WithLogger(log))

		_ = app.Expose("appName", "jay demo")
		_ = app.Expose("now", func() string {
			return time.Now().Format(time.Kitchen)
		})

		header := jay.C(func() ([]*jay.Node, error) {
			return app.Build("header", jay.Props{"class": map[string]bool{"site-header": true}},
				jay.D("a", jay.Props{"href": "#"}, "Home"),
				" · ",
				jay.D("a", jay.Props{"href": "#about"}, "About"),
			)
		})
		footer := jay.C(func() ([]*jay.Node, error) {
			return app.Build("footer", nil, "served by jay-dev")
		})
		home := jay.C(func() ([]*jay.Node, error) {
			return app.Build("div", jay.Props{"class": map[string]bool{"page": true, "home": true}},
				jay.D("h1", nil, "J{appName}"),
				jay.D("p", jay.Props{"id": "clock"}, "It is J{now()}"),
				jay.D("p", nil, `Send {"type":"rerender","id":"clock"} on /stream to refresh the clock.`),
			)
		})
		about := jay.C(func() ([]*jay.Node, error) {
			return app.Build("div", jay.Props{"class": map[string]bool{"page": true, "about": true}},
				jay.D("h1", nil, "About"),
				jay.D("p", nil, "A descriptor-driven UI framework with hash routing."),
			)
		})

		app.Configure(jay.Config{
			Title: "jay demo",
			Theme: "light",
			Global: jay.Global{
				Headers: []jay.Factory{header},
				Footers: []jay.Factory{footer},
				Pages:   []string{jay.Wildcard},
			},
			Pages: map[string]jay.Factory{
				"/":      home,
				"/about": about,
			},
		})
		return app
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"promptpilot/config"
	"promptpilot/exporter"
	"promptpilot/generator"
	"promptpilot/logger"
	"promptpilot/server"
	"promptpilot/session"
	"promptpilot/sink"
	"promptpilot/store/memory"
)

func main() {
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	verbose := flag.Bool("v", false, "enable debug logs")
	taskName := flag.String("type", "text", "task type: design, code, summary, chart, social, text")
	prompt := flag.String("prompt", "", "prompt to generate from")
	exportFormat := flag.String("export", "", "save as a bulk export (json, csv, txt, md) instead of a single download")
	outDir := flag.String("out", "", "output directory (overrides config.export_dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *outDir != "" {
		cfg.ExportDir = *outDir
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	sess, err := buildSession(cfg, log)
	if err != nil {
		log.Fatal("setup failed", zap.Error(err))
	}

	if *serve {
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if err := runServer(sess, cfg, listen, log); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
		return
	}

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "--prompt is required unless --serve is set")
		os.Exit(1)
	}
	path, err := runOnce(context.Background(), sess, *taskName, *prompt, *exportFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func buildSession(cfg config.Config, log *zap.Logger) (*session.Session, error) {
	llm, err := buildCompleter(cfg)
	if err != nil {
		return nil, err
	}
	st := memory.New()
	agent, err := generator.NewAgent(llm, st,
		generator.WithLogger(log.Named("agent")),
		generator.WithMaxPromptLength(cfg.MaxPromptLength),
	)
	if err != nil {
		return nil, err
	}

	clip := &sink.MemoryClipboard{}
	sharer := &sink.FallbackSharer{
		Clipboard: clip,
		BaseURL:   cfg.Share.BaseURL,
		Log:       log.Named("share"),
	}
	if cfg.Share.WebhookURL != "" {
		sharer.Native = sink.NewWebhookSharer(cfg.Share.WebhookURL, nil)
	}

	return session.New(session.Deps{
		Agent:     agent,
		Store:     st,
		Saver:     sink.DirSaver{Dir: cfg.ExportDir},
		Clipboard: clip,
		Sharer:    sharer,
		Log:       log.Named("session"),
	})
}

func buildCompleter(cfg config.Config) (generator.Completer, error) {
	settings := &generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout.Std(),
	}
	switch cfg.LLM.Provider {
	case "", "mock":
		return generator.TemplateCompleter{Delay: cfg.GenerationDelay.Std()}, nil
	case "openai", "deepseek":
		// deepseek is reached through its OpenAI-compatible endpoint
		c, err := generator.NewOpenAICompleter(settings)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "ollama":
		c, err := generator.NewOllamaCompleter(settings)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func runServer(sess *session.Session, cfg config.Config, listen string, log *zap.Logger) error {
	srv, err := server.New(sess,
		server.WithLogger(log.Named("http")),
		server.WithAllowedOrigins(cfg.CORSAllowedOrigins),
		server.WithMetrics(),
	)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting web server", zap.String("addr", listen), zap.String("llm", cfg.LLM.Provider))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	log.Info("shut down signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("shut down gracefully")
	return nil
}

// runOnce generates one result and saves it, returning the written path.
func runOnce(ctx context.Context, sess *session.Session, taskName, prompt, exportFormat string) (string, error) {
	task, err := generator.ParseTaskType(taskName)
	if err != nil {
		return "", err
	}
	var format exporter.Format
	if exportFormat != "" {
		if format, err = exporter.ParseFormat(exportFormat); err != nil {
			return "", err
		}
	}
	result, err := sess.SubmitAs(ctx, task, prompt)
	if err != nil {
		return "", err
	}
	if format == "" {
		return sess.SaveDownload(ctx, result.ID)
	}
	return sess.SaveExport(ctx, format, nil)
}

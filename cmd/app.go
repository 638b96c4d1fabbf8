package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"stingwatch/internal/components"
	"stingwatch/internal/config"
)

func Run() error {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return err
	}

	logger := components.SetupLogger(cfg.Env)

	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY is empty")
	}
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		return fmt.Errorf("VAPID keys are empty")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.DispatchWorker.Run(ctx)
		logger.Info("dispatch worker stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan
	logger.Info("shutdown signal received", "signal", sig.String())

	stop()
	wg.Wait()
	comps.ShutdownAll()

	return nil
}

package main

import (
	"os"
	"os/signal"
	"syscall"
	"vincit.fi/meme-generator/backend"
	"vincit.fi/meme-generator/common/logger"
	"vincit.fi/meme-generator/common/util"
)

func main() {
	params := util.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	stores, err := backend.InitializeStores(params)
	if err != nil {
		logger.Error.Fatalf("Could not open database: %s", err)
	}
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(params.EventBusQueueSize())
	services, err := backend.InitializeServices(params, stores, brokers)
	if err != nil {
		logger.Error.Fatalf("Could not initialize services: %s", err)
	}
	defer services.Close()

	httpServer := backend.InitializeServer(services, stores, brokers)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		logger.Info.Print("Shutting down")
		if err := httpServer.Shutdown(); err != nil {
			logger.Error.Printf("Shutdown failed: %s", err)
		}
	}()

	if err := httpServer.Listen(params.HttpPort()); err != nil {
		logger.Error.Printf("Server stopped: %s", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pickfoo-owner/config"
	"pickfoo-owner/internal/alerts"
	"pickfoo-owner/internal/api"
	"pickfoo-owner/internal/guard"
	"pickfoo-owner/internal/localstore"
	"pickfoo-owner/internal/query"
	"pickfoo-owner/internal/realtime"
	"pickfoo-owner/internal/session"
)

// logNavigator records route changes. A UI frontend would swap in its own
// Navigator.
type logNavigator struct{}

func (logNavigator) Navigate(route string) {
	log.Printf("[owner-dashboard] navigate -> %s", route)
}

// bellPlayer rings the terminal bell for new-order alerts.
type bellPlayer struct{}

func (bellPlayer) Play() error {
	_, err := os.Stdout.WriteString("\a")
	return err
}

func newTransport() realtime.Transport {
	cfg := config.Get()
	switch cfg.Realtime.Driver {
	case "kafka":
		return realtime.NewKafkaTransport(cfg.Realtime.Topic)
	default:
		return realtime.NewRedisTransport(config.MustInitRedis())
	}
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	local, err := localstore.Open(cfg.Storage.Dir)
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}
	defer local.Close()

	client := api.NewClient(cfg.API.BaseURL)
	sess := session.NewStore(client, local)

	cache := query.NewCache()
	restaurants := query.NewRestaurants(client, cache)

	nav := logNavigator{}
	center := alerts.NewCenter(nav, bellPlayer{})
	defer center.Close()

	sub := realtime.NewSubscriber(newTransport(), center)
	defer sub.Detach()

	access := guard.New(sess, restaurants, nav)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess.Initialize(ctx)

	if user := sess.Current(); user != nil {
		log.Printf("[owner-dashboard] restored session for %s", user.Email)
		if err := sub.Attach(ctx, user.ID); err != nil {
			log.Printf("[owner-dashboard] realtime attach failed: %v", err)
		}
	} else {
		log.Println("[owner-dashboard] no active session")
	}
	access.Evaluate(ctx, guard.RouteOrders)

	log.Println("[owner-dashboard] running, Ctrl+C to exit")
	<-ctx.Done()
	log.Println("[owner-dashboard] shutting down")
}

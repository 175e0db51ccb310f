// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/helpway/helpway-core/internal/adapters/events"
	g "github.com/helpway/helpway-core/internal/adapters/grpc"
	"github.com/helpway/helpway-core/internal/adapters/httpapi"
	"github.com/helpway/helpway-core/internal/adapters/osrm"
	"github.com/helpway/helpway-core/internal/adapters/redis"
	"github.com/helpway/helpway-core/internal/adapters/repository"
	"github.com/helpway/helpway-core/internal/adapters/unlock"
	"github.com/helpway/helpway-core/internal/application"
	"github.com/helpway/helpway-core/internal/config"
	"github.com/helpway/helpway-core/internal/ports"
	"github.com/helpway/helpway-core/pkg/auth"
	"github.com/helpway/helpway-core/pkg/vault"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := repository.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("failed to open secure store: %v", err)
	}
	defer db.Close()

	sealer, err := vault.NewSealer(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("failed to init vault: %v", err)
	}
	store, err := repository.NewSecureStore(db, cfg.StoreDriver, sealer)
	if err != nil {
		log.Fatalf("failed to init secure store: %v", err)
	}

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("failed to init tokens: %v", err)
	}

	var cache ports.CachePort
	if cfg.RedisAddr != "" {
		c := redis.NewCache(redis.Options{
			Addr:      cfg.RedisAddr,
			Username:  cfg.RedisUsername,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: "helpway",
			TTL:       cfg.CacheTTL,
		})
		if err := c.Ping(context.Background()); err != nil {
			log.Printf("redis unavailable, running without cache: %v", err)
		} else {
			defer c.Close()
			cache = c
		}
	}

	var publisher ports.EventPublisherPort
	var bus *events.Bus
	if cfg.NATSURL != "" {
		bus, err = events.Connect(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			log.Printf("nats unavailable, running without events: %v", err)
		} else {
			defer bus.Close()
			publisher = bus
		}
	}

	api := httpapi.NewClient(cfg.APIURL, cfg.HTTPTimeout)
	pins := unlock.NewPINGate(store)
	sessions := application.NewSessionService(api, store, pins)
	campaigns := application.NewCampaignService(api, cache, publisher, sessions)
	srv := g.NewServer(g.Services{
		Auth:      application.NewAuthService(sessions, tokens),
		Sessions:  sessions,
		Accounts:  application.NewAccountService(api, sessions),
		Campaigns: campaigns,
		Donations: application.NewDonationService(api, publisher, sessions, campaigns),
		Routes:    application.NewRouteService(osrm.NewClient(cfg.OSRMURL, cfg.HTTPTimeout), campaigns),
		PINs:      pins,
		Tokens:    tokens,
	})

	if sess := sessions.Restore(context.Background()); sess != nil {
		log.Printf("restored session for user %s", sess.User.ID)
	}

	if bus != nil {
		// another instance wrote a campaign or donation: drop our snapshots
		if _, err := bus.Subscribe(func(subject string, _ []byte) {
			if strings.HasSuffix(subject, application.SubjectCampaignChanged) ||
				strings.HasSuffix(subject, application.SubjectDonationRegistered) {
				campaigns.InvalidateCache(context.Background())
			}
		}); err != nil {
			log.Printf("failed to subscribe to change events: %v", err)
		}
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(srv.AuthInterceptor))
	g.RegisterHelpwayServiceServer(grpcServer, srv)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(g.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Println("shutting down")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	fmt.Printf("gRPC server listening on %s\n", cfg.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

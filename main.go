package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "LapJoint/internal/auth"
	bolts "LapJoint/internal/calc/bolts"
	joints "LapJoint/internal/calc/joints"
	loads "LapJoint/internal/calc/loads"
	autodesign "LapJoint/internal/calc/premium/autodesign"
	batch "LapJoint/internal/calc/premium/batch"
	importer "LapJoint/internal/calc/premium/importer"
	recommend "LapJoint/internal/calc/premium/recommend"
	report "LapJoint/internal/calc/report"
	config "LapJoint/internal/config"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(ctx context.Context, mux *mux.Router, cfg config.Config) {
	authEnv := &auth.Authenv{
		JWTkey:       cfg.TokenKey,
		Login:        cfg.OperatorLogin,
		PasswordHash: cfg.OperatorPasswordHash,
		TTL:          cfg.SessionTTL,
		Secure:       cfg.CookieSecure,
	}
	if cfg.OperatorPasswordHash == "" {
		log.Println("OPERATOR_PASSWORD_HASH is not set, login is disabled")
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	go limiter.Run(ctx, time.Minute, 10*time.Minute)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

	tools := api.PathPrefix("/tools").Subrouter()
	tools.Use(authEnv.AuthMiddleware)

	boltsH := &bolts.Handler{}
	loadsH := &loads.Handler{}
	jointsH := &joints.Handler{}
	recommendH := &recommend.Handler{}
	autoH := &autodesign.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	tools.HandleFunc("/bolts/grade", boltsH.Grade).Methods("GET")
	tools.HandleFunc("/bolts/catalog", boltsH.Catalog).Methods("GET")
	tools.HandleFunc("/loads/calc", loadsH.Calc).Methods("POST")
	tools.HandleFunc("/joints/calc", jointsH.Calc).Methods("POST")
	tools.HandleFunc("/joints/check", jointsH.Check).Methods("POST")
	tools.HandleFunc("/joints/recommend", recommendH.Bolts).Methods("POST")
	tools.HandleFunc("/joints/autodesign", autoH.LapJoint).Methods("POST")
	tools.HandleFunc("/joints/batch", batchH.LapJoints).Methods("POST")
	tools.HandleFunc("/joints/import", importH.LapJoints).Methods("POST")
	tools.HandleFunc("/joints/report", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	mux := mux.NewRouter()
	HandleList(ctx, mux, cfg)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s (tls=%t)", cfg.Addr, cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}

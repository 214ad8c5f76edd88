package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	gradation "github.com/mairfan018/sieve-analysis-tool/internal/calc/gradation"
	middleware "github.com/mairfan018/sieve-analysis-tool/internal/middleware"
	scale "github.com/mairfan018/sieve-analysis-tool/internal/scale"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring %s=%q: expected a positive integer", key, v)
		return def
	}
	return n
}

func HandleList(mux *mux.Router, h *gradation.Handler) {
	limiter := middleware.NewIPRateLimiter(5, 10)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/tools/sieve/analyze", h.Analyze).Methods("POST")
	api.HandleFunc("/tools/sieve/report", h.Report).Methods("POST")
	api.HandleFunc("/tools/sieve/scale", h.SieveSizes).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}

	sc, err := scale.Load(os.Getenv("SIEVE_SCALE_FILE"))
	if err != nil {
		log.Fatalf("Sieve scale: %v", err)
	}

	h := &gradation.Handler{
		Scale:      sc,
		PlotWidth:  envInt("PLOT_WIDTH", 1200),
		PlotHeight: envInt("PLOT_HEIGHT", 800),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on :" + port)
	HandleList(mux, h)
	handler := middleware.CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}

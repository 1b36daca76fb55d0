package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "rotunda/internal/auth"
	analysis "rotunda/internal/calc/analysis"
	batch "rotunda/internal/calc/batch"
	beam "rotunda/internal/calc/beam"
	column "rotunda/internal/calc/column"
	importer "rotunda/internal/calc/importer"
	report "rotunda/internal/calc/report"
	seismic "rotunda/internal/calc/seismic"
	standards "rotunda/internal/calc/standards"
	wind "rotunda/internal/calc/wind"
	dataset "rotunda/internal/dataset"
	repo "rotunda/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") //у меня нет домена это тестовый сервер
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	pgRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}
	datasetDir := os.Getenv("DATASET_DIR")
	if datasetDir == "" {
		datasetDir = "./datasets"
	}
	if err := os.MkdirAll(datasetDir, 0o755); err != nil {
		log.Fatal("Cannot create dataset directory:", err)
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: pgRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	windH := &wind.Handler{}
	seismicH := &seismic.Handler{}
	beamH := &beam.Handler{}
	columnH := &column.Handler{}
	standardsH := &standards.Handler{}
	analysisH := &analysis.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}
	datasetH := &dataset.Handler{Repo: pgRepo, Dir: datasetDir}

	secureApi.HandleFunc("/tools/wind/calc", windH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/seismic/calc", seismicH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/beam/calc", beamH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/column/calc", columnH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/standards/calc", standardsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/calc", analysisH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/import", importerH.Analyze).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/dataset/generate", datasetH.Generate).Methods("POST")
	secureApi.HandleFunc("/dataset/runs", datasetH.Runs).Methods("GET")

	mux.PathPrefix("/datasets/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/datasets/", http.FileServer(http.Dir(datasetDir)))))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}

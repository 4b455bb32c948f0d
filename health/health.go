package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthStatus 헬스체크 응답 구조체
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version"`
	Memory    string    `json:"memory_usage"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Checker 개별 구성요소의 상태를 보고합니다
type Checker func() error

var (
	startTime = time.Now()
	checkers  = map[string]Checker{}
)

// RegisterChecker 구성요소 상태 검사를 등록합니다
func RegisterChecker(name string, check Checker) {
	checkers[name] = check
}

// StartHealthServer 헬스체크 HTTP 서버를 시작합니다
func StartHealthServer(port string) {
	if port == "" {
		port = "8080"
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/health", healthHandler)
	router.Get("/", healthHandler)

	go func() {
		fmt.Printf("Health check server starting on port %s\n", port)
		if err := http.ListenAndServe(":"+port, router); err != nil {
			fmt.Printf("Health server error: %v\n", err)
		}
	}()
}

// healthHandler 헬스체크 핸들러
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	overall := "healthy"
	checks := make(map[string]string, len(checkers))
	for name, check := range checkers {
		if err := check(); err != nil {
			checks[name] = err.Error()
			overall = "degraded"
		} else {
			checks[name] = "ok"
		}
	}

	status := HealthStatus{
		Status:    overall,
		Timestamp: time.Now(),
		Uptime:    time.Since(startTime).String(),
		Version:   "v1.0.0",
		GoVersion: runtime.Version(),
		Memory:    fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/1024/1024),
		Checks:    checks,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

package handler

import (
	"net/http"
	"repnowait/config"
	"repnowait/di"
	"repnowait/shared/logger"
	"sync"
)

var (
	once   sync.Once
	router http.Handler
)

// Handler serves the API from a serverless runtime. The dependency graph is built on the first call
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)

		router = di.InitializeService().HTTP.Handler()
	})

	router.ServeHTTP(w, r)
}

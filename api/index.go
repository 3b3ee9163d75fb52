// Package handler exposes the service as a single serverless function.
package handler

import (
	"campsite/config"
	"campsite/di"
	"campsite/shared/logger"
	"net/http"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}

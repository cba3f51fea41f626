package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Logging escreve uma linha estruturada por requisição.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapped.statusCode,
			"duracao":  time.Since(start).String(),
			"remoteIP": r.RemoteAddr,
		}).Info("requisição atendida")
	})
}

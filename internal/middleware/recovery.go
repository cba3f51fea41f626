package middleware

import (
	"net/http"

	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
)

// Recovery converte panics em 500 sem derrubar o processo.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithFields(logrus.Fields{
					"panic": rec,
					"path":  r.URL.Path,
				}).Error("panic na requisição")
				utils.RespondErro(w, http.StatusInternalServerError, "erro interno")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

package utils

import (
	"encoding/json"
	"net/http"
)

// ErroResponse é o envelope de erro da API: {"error": "mensagem"}.
type ErroResponse struct {
	Error string `json:"error"`
}

// RespondJSON serializa o payload com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondErro escreve o envelope de erro padrão da API.
func RespondErro(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, ErroResponse{Error: mensagem})
}

package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler expõe o CRUD de clientes.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo handler de clientes.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in Cliente
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if strings.TrimSpace(in.Nome) == "" {
		utils.RespondErro(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	c := &Cliente{
		Nome:     in.Nome,
		Telefone: in.Telefone,
		Email:    in.Email,
		Endereco: in.Endereco,
		CPF:      in.CPF,
	}
	if err := h.Repo.Create(c); err != nil {
		logrus.WithError(err).Error("falha ao criar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao criar cliente")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar clientes")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar clientes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do cliente inválido")
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao buscar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao buscar cliente")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do cliente inválido")
		return
	}

	var in Cliente
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if strings.TrimSpace(in.Nome) == "" {
		utils.RespondErro(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	atualizado, err := h.Repo.Update(uint(id), &in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao atualizar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar cliente")
		return
	}

	utils.RespondJSON(w, http.StatusOK, atualizado)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do cliente inválido")
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao deletar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao deletar cliente")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

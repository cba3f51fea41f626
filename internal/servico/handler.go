package servico

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler expõe o CRUD de serviços.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo handler de serviços.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /servicos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ServicoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	data, err := in.Validar()
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, err.Error())
		return
	}

	existe, err := h.Repo.ClienteExiste(in.ClienteID)
	if err != nil {
		logrus.WithError(err).Error("falha ao conferir cliente do serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao criar serviço")
		return
	}
	if !existe {
		utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
		return
	}

	s := &Servico{
		DataServico:         data,
		Veiculo:             in.Veiculo,
		Placa:               in.Placa,
		ValorBruto:          in.ValorBruto,
		PorcentagemComissao: in.PorcentagemComissao,
		Observacao:          in.Observacao,
		ValorPago:           in.ValorPago,
		ClienteID:           in.ClienteID,
	}
	if err := h.Repo.Create(s); err != nil {
		logrus.WithError(err).Error("falha ao criar serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao criar serviço")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, s)
}

// GET /servicos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	servicos, err := h.Repo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar serviços")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar serviços")
		return
	}
	utils.RespondJSON(w, http.StatusOK, servicos)
}

// GET /servicos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do serviço inválido")
		return
	}

	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "serviço não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao buscar serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao buscar serviço")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

// PUT /servicos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do serviço inválido")
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "serviço não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao buscar serviço para edição")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar serviço")
		return
	}

	var in ServicoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	data, err := in.Validar()
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, err.Error())
		return
	}

	existe, err := h.Repo.ClienteExiste(in.ClienteID)
	if err != nil {
		logrus.WithError(err).Error("falha ao conferir cliente do serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar serviço")
		return
	}
	if !existe {
		utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
		return
	}

	novos := &Servico{
		DataServico:         data,
		Veiculo:             in.Veiculo,
		Placa:               in.Placa,
		ValorBruto:          in.ValorBruto,
		PorcentagemComissao: in.PorcentagemComissao,
		Observacao:          in.Observacao,
		ValorPago:           in.ValorPago,
		ClienteID:           in.ClienteID,
	}
	if err := h.Repo.Update(existente, novos); err != nil {
		logrus.WithError(err).Error("falha ao atualizar serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar serviço")
		return
	}

	utils.RespondJSON(w, http.StatusOK, existente)
}

// DELETE /servicos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do serviço inválido")
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "serviço não encontrado")
			return
		}
		logrus.WithError(err).Error("falha ao deletar serviço")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao deletar serviço")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

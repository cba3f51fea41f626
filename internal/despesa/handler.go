package despesa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler expõe o CRUD de despesas.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo handler de despesas.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// DespesaDTO é o payload de criação/edição de despesa.
type DespesaDTO struct {
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Pago           bool    `json:"pago"`
}

func (d *DespesaDTO) validar() (time.Time, error) {
	if strings.TrimSpace(d.Descricao) == "" {
		return time.Time{}, errors.New("descricao é obrigatória")
	}
	if d.Valor < 0 {
		return time.Time{}, errors.New("valor não pode ser negativo")
	}
	if strings.TrimSpace(d.DataVencimento) == "" {
		return time.Time{}, errors.New("dataVencimento é obrigatória")
	}
	data, err := time.Parse("2006-01-02", d.DataVencimento)
	if err != nil {
		return time.Time{}, errors.New("dataVencimento inválida, use o formato AAAA-MM-DD")
	}
	return data, nil
}

// POST /despesas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	vencimento, err := in.validar()
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, err.Error())
		return
	}

	d := &Despesa{
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		DataVencimento: vencimento,
		Pago:           in.Pago,
	}
	if err := h.Repo.Create(d); err != nil {
		logrus.WithError(err).Error("falha ao criar despesa")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao criar despesa")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, d)
}

// GET /despesas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	despesas, err := h.Repo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("falha ao listar despesas")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar despesas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, despesas)
}

// PUT /despesas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID da despesa inválido")
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "despesa não encontrada")
			return
		}
		logrus.WithError(err).Error("falha ao buscar despesa")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar despesa")
		return
	}

	var in DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	vencimento, err := in.validar()
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, err.Error())
		return
	}

	existente.Descricao = in.Descricao
	existente.Valor = in.Valor
	existente.DataVencimento = vencimento
	existente.Pago = in.Pago

	if err := h.Repo.Update(existente); err != nil {
		logrus.WithError(err).Error("falha ao atualizar despesa")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar despesa")
		return
	}

	utils.RespondJSON(w, http.StatusOK, existente)
}

// PATCH /despesas/{id}/pagamento
func (h *Handler) AtualizarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID da despesa inválido")
		return
	}

	var payload struct {
		Pago bool `json:"pago"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	if err := h.Repo.UpdatePago(uint(id), payload.Pago); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "despesa não encontrada")
			return
		}
		logrus.WithError(err).Error("falha ao atualizar pagamento da despesa")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao atualizar pagamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// DELETE /despesas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID da despesa inválido")
		return
	}

	if err := h.Repo.DeleteByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "despesa não encontrada")
			return
		}
		logrus.WithError(err).Error("falha ao deletar despesa")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao deletar despesa")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

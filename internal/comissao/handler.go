package comissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler expõe o livro-razão de comissões na borda HTTP.
type Handler struct {
	Ledger *Ledger
	Repo   *Repository
}

// NewHandler cria um novo handler de comissões.
func NewHandler(ledger *Ledger, repo *Repository) *Handler {
	return &Handler{Ledger: ledger, Repo: repo}
}

// DTO do POST /comissoes/receber. A data é opcional ("2006-01-02");
// quando omitida assume a data de hoje.
type ReceberRequest struct {
	ServicoID uint    `json:"servicoId"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
}

type DesfazerRequest struct {
	ServicoID uint `json:"servicoId"`
}

// POST /comissoes/receber
func (h *Handler) Receber(w http.ResponseWriter, r *http.Request) {
	var in ReceberRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if in.ServicoID == 0 {
		utils.RespondErro(w, http.StatusBadRequest, "servicoId é obrigatório")
		return
	}

	data := time.Now()
	if in.Data != "" {
		parsed, err := time.Parse("2006-01-02", in.Data)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD")
			return
		}
		data = parsed
	}

	recebimento, err := h.Ledger.Receber(in.ServicoID, in.Valor, data)
	if err != nil {
		h.respondErroLedger(w, err, in.ServicoID)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":               true,
		"dataRecebimento":  recebimento.DataRecebimento.Format("2006-01-02"),
		"comissaoTotal":    recebimento.ComissaoTotal,
		"comissaoRecebida": recebimento.ComissaoRecebida,
		"quitado":          recebimento.Quitado,
	})
}

// POST /comissoes/desfazer
func (h *Handler) Desfazer(w http.ResponseWriter, r *http.Request) {
	var in DesfazerRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if in.ServicoID == 0 {
		utils.RespondErro(w, http.StatusBadRequest, "servicoId é obrigatório")
		return
	}

	if err := h.Ledger.Desfazer(in.ServicoID); err != nil {
		h.respondErroLedger(w, err, in.ServicoID)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// POST /comissoes/backfill
// Migração única de dados anteriores ao livro-razão; rodar de novo é
// inofensivo.
func (h *Handler) Backfill(w http.ResponseWriter, r *http.Request) {
	ajustados, err := h.Ledger.BackfillLegado()
	if err != nil {
		logrus.WithError(err).Error("falha no backfill de comissões legadas")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao executar backfill de comissões")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":                true,
		"servicosAjustados": ajustados,
	})
}

// GET /servicos/{id}/comissoes
func (h *Handler) ListarPorServico(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID do serviço inválido")
		return
	}

	lancamentos, err := h.Repo.ListByServicoID(uint(id))
	if err != nil {
		logrus.WithError(err).WithField("servicoId", id).Error("falha ao listar lançamentos")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao buscar lançamentos de comissão")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lancamentos)
}

// Traduz erros do motor para status HTTP: domínio vs. infraestrutura.
func (h *Handler) respondErroLedger(w http.ResponseWriter, err error, servicoID uint) {
	switch {
	case errors.Is(err, ErrServicoNaoEncontrado):
		utils.RespondErro(w, http.StatusNotFound, ErrServicoNaoEncontrado.Error())
	case errors.Is(err, ErrValorInvalido):
		utils.RespondErro(w, http.StatusBadRequest, ErrValorInvalido.Error())
	case errors.Is(err, ErrValorExcedeRestante):
		utils.RespondErro(w, http.StatusUnprocessableEntity, ErrValorExcedeRestante.Error())
	default:
		logrus.WithError(err).WithField("servicoId", servicoID).Error("falha na operação do livro-razão")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao gravar recebimento de comissão")
	}
}

package relatorio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler expõe os relatórios e exportações.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo handler de relatórios.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// GET /relatorios/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Repo.Resumo()
	if err != nil {
		logrus.WithError(err).Error("falha ao montar resumo")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao montar resumo")
		return
	}
	utils.RespondJSON(w, http.StatusOK, resumo)
}

// GET /relatorios/comissoes
func (h *Handler) Comissoes(w http.ResponseWriter, r *http.Request) {
	rel, err := h.Repo.Comissoes()
	if err != nil {
		logrus.WithError(err).Error("falha ao montar relatório de comissões")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao montar relatório de comissões")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rel)
}

func (h *Handler) servirArquivo(w http.ResponseWriter, nome, contentType string, gerar func() ([]byte, error)) {
	dados, err := gerar()
	if err != nil {
		logrus.WithError(err).WithField("arquivo", nome).Error("falha ao gerar exportação")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao gerar exportação")
		return
	}

	nomeCompleto := fmt.Sprintf("%s_%s", time.Now().Format("2006-01-02"), nome)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nomeCompleto))
	_, _ = w.Write(dados)
}

// GET /relatorios/servicos.csv
func (h *Handler) ServicosCSV(w http.ResponseWriter, r *http.Request) {
	h.servirArquivo(w, "servicos.csv", "text/csv", h.Repo.ServicosCSV)
}

// GET /relatorios/despesas.csv
func (h *Handler) DespesasCSV(w http.ResponseWriter, r *http.Request) {
	h.servirArquivo(w, "despesas.csv", "text/csv", h.Repo.DespesasCSV)
}

// GET /relatorios/comissoes.csv
func (h *Handler) ComissoesCSV(w http.ResponseWriter, r *http.Request) {
	h.servirArquivo(w, "comissoes.csv", "text/csv", h.Repo.ComissoesCSV)
}

// GET /relatorios/servicos.pdf
func (h *Handler) ServicosPDF(w http.ResponseWriter, r *http.Request) {
	h.servirArquivo(w, "comissoes.pdf", "application/pdf", h.Repo.ServicosPDF)
}

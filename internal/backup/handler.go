package backup

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Versão do formato do arquivo de backup.
const versaoBackup = "2.0"

// Handler expõe o snapshot completo, o backup e a importação.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo handler de backup.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// GET /dados
// Retrato completo do banco usado pelas telas ao carregar.
func (h *Handler) Dados(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Carregar()
	if err != nil {
		logrus.WithError(err).Error("falha ao carregar dados")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao carregar dados")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

// GET /backup
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Carregar()
	if err != nil {
		logrus.WithError(err).Error("falha ao exportar backup")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao exportar backup")
		return
	}

	b := Backup{
		Snapshot: *s,
		Metadata: Metadata{
			ExportDate:     time.Now().UTC(),
			Version:        versaoBackup,
			TotalClientes:  len(s.Clientes),
			TotalServicos:  len(s.Servicos),
			TotalDespesas:  len(s.Despesas),
			TotalComissoes: len(s.Comissoes),
		},
	}
	utils.RespondJSON(w, http.StatusOK, b)
}

// POST /importar
// Substitui o banco inteiro pelo arquivo enviado, tudo-ou-nada.
func (h *Handler) Importar(w http.ResponseWriter, r *http.Request) {
	var in Backup
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	if err := h.Repo.Importar(&in.Snapshot); err != nil {
		logrus.WithError(err).Error("falha na importação")
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao importar dados")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":             true,
		"totalClientes":  len(in.Clientes),
		"totalServicos":  len(in.Servicos),
		"totalDespesas":  len(in.Despesas),
		"totalComissoes": len(in.Comissoes),
	})
}

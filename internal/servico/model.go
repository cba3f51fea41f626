package servico

import (
	"time"

	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"gorm.io/gorm"
)

// Servico representa um trabalho realizado para um cliente (martelinho,
// polimento etc.), com valor bruto e porcentagem de comissão. Os campos
// ComissaoRecebida, Quitado e DataRecebimentoComissao pertencem ao
// livro-razão (pacote comissao) e não devem ser escritos por fora dele;
// o CRUD deste pacote só os inicializa na criação e os reajusta quando a
// edição reduz a comissão total.
type Servico struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	DataServico             time.Time  `gorm:"not null;index" json:"dataServico"`
	Veiculo                 string     `gorm:"size:255;not null" json:"veiculo"`
	Placa                   string     `gorm:"size:20;not null" json:"placa"`
	ValorBruto              float64    `gorm:"not null;default:0" json:"valorBruto"`
	PorcentagemComissao     float64    `gorm:"not null;default:0" json:"porcentagemComissao"`
	Observacao              string     `gorm:"size:500" json:"observacao"`
	ValorPago               float64    `gorm:"not null;default:0" json:"valorPago"`
	Quitado                 bool       `gorm:"not null;default:false" json:"quitado"`
	ComissaoRecebida        float64    `gorm:"not null;default:0" json:"comissaoRecebida"`
	ClienteID               uint       `gorm:"not null;index" json:"clienteId"`
	DataRecebimentoComissao *time.Time `json:"dataRecebimentoComissao,omitempty"`

	Comissoes []comissao.Comissao `gorm:"foreignKey:ServicoID;constraint:OnDelete:CASCADE" json:"comissoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Servico{})
}

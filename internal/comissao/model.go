package comissao

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um lançamento de comissão. O fluxo de recebimento
// só grava "recebido"; os demais existem para dados importados.
const (
	StatusRecebido = "recebido"
	StatusPendente = "pendente"
	StatusAtrasado = "atrasado"
)

// Comissao é um lançamento do livro-razão de comissões: um evento de
// recebimento (parcial ou total) contra a comissão de um serviço.
type Comissao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ServicoID       uint      `gorm:"not null;index" json:"servicoId"`
	Valor           float64   `gorm:"not null;default:0" json:"valor"`
	DataRecebimento time.Time `gorm:"not null;index" json:"dataRecebimento"`
	Status          string    `gorm:"size:20;not null;default:'recebido';index" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName mantém o nome da tabela do schema original.
func (Comissao) TableName() string { return "comissoes" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comissao{})
}

package cliente

import (
	"time"

	"github.com/oliveiramdo/api-gestao/internal/servico"
	"gorm.io/gorm"
)

// Cliente é um cliente da oficina.
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null;index" json:"nome"`
	Telefone string `gorm:"size:30" json:"telefone"`
	Email    string `gorm:"size:255" json:"email"`
	Endereco string `gorm:"size:500" json:"endereco"`
	CPF      string `gorm:"size:14" json:"cpf"`

	Servicos []servico.Servico `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"servicos,omitempty"`

	CreatedAt time.Time `json:"dataCadastro"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}

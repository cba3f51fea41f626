package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Despesa é um gasto da oficina, com vencimento e flag de pagamento.
type Despesa struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Descricao      string    `gorm:"size:255;not null" json:"descricao"`
	Valor          float64   `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time `gorm:"not null;index" json:"dataVencimento"`
	Pago           bool      `gorm:"not null;default:false;index" json:"pago"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}

package database

import (
	"fmt"

	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/config"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/servico"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect abre a conexão com o Postgres usando a configuração do
// processo. O log do gorm fica restrito a erros; o log de requisição é
// responsabilidade do middleware.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("conectar no banco: %w", err)
	}
	return db, nil
}

// Migrate aplica o AutoMigrate de todas as tabelas, pais antes de filhos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cliente.Cliente{},
		&servico.Servico{},
		&despesa.Despesa{},
		&comissao.Comissao{},
	)
}

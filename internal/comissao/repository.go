package comissao

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados dos lançamentos de comissão.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// ListByServicoID busca todos os lançamentos de um serviço.
func (r *Repository) ListByServicoID(servicoID uint) ([]Comissao, error) {
	var lancamentos []Comissao
	err := r.DB.
		Where("servico_id = ?", servicoID).
		Order("data_recebimento ASC").
		Find(&lancamentos).Error
	return lancamentos, err
}

// ListAll retorna todos os lançamentos, mais recentes primeiro.
func (r *Repository) ListAll() ([]Comissao, error) {
	var lancamentos []Comissao
	err := r.DB.Order("data_recebimento DESC").Find(&lancamentos).Error
	return lancamentos, err
}

// SumRecebidaByServicoID soma os lançamentos 'recebido' de um serviço.
func (r *Repository) SumRecebidaByServicoID(servicoID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&Comissao{}).
		Where("servico_id = ? AND status = ?", servicoID, StatusRecebido).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// DeleteByServicoID apaga todos os lançamentos de um serviço. Usado pelo
// cascade do CRUD de serviços, via WithDB(tx) para rodar na transação.
func (r *Repository) DeleteByServicoID(servicoID uint) error {
	return r.DB.Where("servico_id = ?", servicoID).Delete(&Comissao{}).Error
}

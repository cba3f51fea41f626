package despesa

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Despesas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma despesa nova.
func (r *Repository) Create(d *Despesa) error {
	return r.DB.Create(d).Error
}

// FindByID busca uma despesa pelo ID.
func (r *Repository) FindByID(id uint) (*Despesa, error) {
	var d Despesa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAll retorna todas as despesas, vencimentos mais recentes primeiro.
func (r *Repository) ListAll() ([]Despesa, error) {
	var despesas []Despesa
	err := r.DB.Order("data_vencimento DESC").Find(&despesas).Error
	return despesas, err
}

// Update atualiza todos os campos de uma despesa existente.
func (r *Repository) Update(d *Despesa) error {
	return r.DB.Save(d).Error
}

// UpdatePago marca ou desmarca o pagamento de uma despesa.
func (r *Repository) UpdatePago(id uint, pago bool) error {
	res := r.DB.Model(&Despesa{}).Where("id = ?", id).Update("pago", pago)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID apaga a despesa; gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Despesa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

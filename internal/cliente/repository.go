package cliente

import (
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/servico"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Clientes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um cliente novo.
func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

// FindByID busca um cliente com seus serviços.
func (r *Repository) FindByID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Preload("Servicos").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll retorna todos os clientes em ordem alfabética.
func (r *Repository) ListAll() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

// Update atualiza os dados cadastrais de um cliente.
func (r *Repository) Update(id uint, novos *Cliente) (*Cliente, error) {
	var existente Cliente
	if err := r.DB.First(&existente, id).Error; err != nil {
		return nil, err
	}

	existente.Nome = novos.Nome
	existente.Telefone = novos.Telefone
	existente.Email = novos.Email
	existente.Endereco = novos.Endereco
	existente.CPF = novos.CPF

	if err := r.DB.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

// Delete remove o cliente e, na mesma transação, os serviços dele e os
// lançamentos de comissão desses serviços (netos antes dos filhos, filhos
// antes do pai).
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("servico_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Table("servicos").Select("id").Where("cliente_id = ?", id),
		).Delete(&comissao.Comissao{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cliente_id = ?", id).Delete(&servico.Servico{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Cliente{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

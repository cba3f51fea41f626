package backup

import (
	"fmt"

	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/servico"
	"gorm.io/gorm"
)

// Ordem de dependência das tabelas: pais primeiro. A importação apaga na
// ordem inversa e insere nesta ordem para respeitar as chaves
// estrangeiras.
var tabelas = []string{"clientes", "servicos", "despesas", "comissoes"}

// Repository carrega e substitui o banco inteiro.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Carregar monta o retrato atual do banco, na mesma ordenação das telas.
func (r *Repository) Carregar() (*Snapshot, error) {
	s := &Snapshot{}
	if err := r.DB.Order("nome ASC").Find(&s.Clientes).Error; err != nil {
		return nil, fmt.Errorf("carregar clientes: %w", err)
	}
	if err := r.DB.Order("data_servico DESC").Find(&s.Servicos).Error; err != nil {
		return nil, fmt.Errorf("carregar serviços: %w", err)
	}
	if err := r.DB.Order("data_vencimento DESC").Find(&s.Despesas).Error; err != nil {
		return nil, fmt.Errorf("carregar despesas: %w", err)
	}
	if err := r.DB.Order("data_recebimento DESC").Find(&s.Comissoes).Error; err != nil {
		return nil, fmt.Errorf("carregar comissões: %w", err)
	}
	return s, nil
}

// Importar substitui todas as linhas do banco pelo conteúdo do snapshot,
// tudo-ou-nada: apaga filhos antes de pais, insere pais antes de filhos
// e realinha as sequências de id no Postgres. IDs presentes no arquivo
// são preservados; linhas sem id recebem id novo.
func (r *Repository) Importar(s *Snapshot) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&comissao.Comissao{}).Error; err != nil {
			return fmt.Errorf("limpar comissões: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&servico.Servico{}).Error; err != nil {
			return fmt.Errorf("limpar serviços: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&despesa.Despesa{}).Error; err != nil {
			return fmt.Errorf("limpar despesas: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&cliente.Cliente{}).Error; err != nil {
			return fmt.Errorf("limpar clientes: %w", err)
		}

		for i := range s.Clientes {
			c := s.Clientes[i]
			c.Servicos = nil
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("importar cliente %q: %w", c.Nome, err)
			}
		}
		for i := range s.Servicos {
			sv := s.Servicos[i]
			sv.Comissoes = nil
			if err := tx.Create(&sv).Error; err != nil {
				return fmt.Errorf("importar serviço %s/%s: %w", sv.Veiculo, sv.Placa, err)
			}
		}
		for i := range s.Despesas {
			d := s.Despesas[i]
			if err := tx.Create(&d).Error; err != nil {
				return fmt.Errorf("importar despesa %q: %w", d.Descricao, err)
			}
		}
		for i := range s.Comissoes {
			c := s.Comissoes[i]
			if c.Status == "" {
				c.Status = comissao.StatusRecebido
			}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("importar lançamento do serviço %d: %w", c.ServicoID, err)
			}
		}

		// As sequências só existem no Postgres; o sqlite dos testes
		// realinha o autoincrement sozinho.
		if tx.Dialector.Name() == "postgres" {
			for _, t := range tabelas {
				realinhar := fmt.Sprintf(
					"SELECT setval(pg_get_serial_sequence('%s','id'), COALESCE((SELECT MAX(id) FROM %s), 1))", t, t)
				if err := tx.Exec(realinhar).Error; err != nil {
					return fmt.Errorf("realinhar sequência de %s: %w", t, err)
				}
			}
		}
		return nil
	})
}

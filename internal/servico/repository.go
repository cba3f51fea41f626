package servico

import (
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/money"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Serviços.
type Repository struct {
	DB          *gorm.DB
	Lancamentos *comissao.Repository
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db, Lancamentos: comissao.NewRepository(db)}
}

// Create insere um serviço novo. Os campos do livro-razão sempre nascem
// zerados, independente do que veio no payload.
func (r *Repository) Create(s *Servico) error {
	s.ComissaoRecebida = 0
	s.Quitado = false
	s.DataRecebimentoComissao = nil
	return r.DB.Create(s).Error
}

// FindByID busca um serviço com seus lançamentos de comissão.
func (r *Repository) FindByID(id uint) (*Servico, error) {
	var s Servico
	if err := r.DB.Preload("Comissoes").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListAll retorna todos os serviços, mais recentes primeiro.
func (r *Repository) ListAll() ([]Servico, error) {
	var servicos []Servico
	err := r.DB.Order("data_servico DESC").Find(&servicos).Error
	return servicos, err
}

// ListByClienteID retorna os serviços de um cliente.
func (r *Repository) ListByClienteID(clienteID uint) ([]Servico, error) {
	var servicos []Servico
	err := r.DB.
		Where("cliente_id = ?", clienteID).
		Order("data_servico DESC").
		Find(&servicos).Error
	return servicos, err
}

// Update salva os campos descritivos de um serviço existente. Quando a
// edição de valor bruto ou porcentagem reduz a comissão total abaixo do
// que já foi recebido, o acumulado é rebaixado para o novo teto e a flag
// quitado é recalculada. O livro-razão não revalida edições; só
// recebimentos.
func (r *Repository) Update(existente *Servico, novos *Servico) error {
	existente.DataServico = novos.DataServico
	existente.Veiculo = novos.Veiculo
	existente.Placa = novos.Placa
	existente.ValorBruto = novos.ValorBruto
	existente.PorcentagemComissao = novos.PorcentagemComissao
	existente.Observacao = novos.Observacao
	existente.ValorPago = novos.ValorPago
	existente.ClienteID = novos.ClienteID

	total := money.ComissaoTotal(existente.ValorBruto, existente.PorcentagemComissao)
	if money.Excede(existente.ComissaoRecebida, total) {
		existente.ComissaoRecebida = total
	}
	existente.Quitado = money.MaiorOuIgual(existente.ComissaoRecebida, total) &&
		money.Excede(existente.ComissaoRecebida, 0)

	return r.DB.Save(existente).Error
}

// Delete remove o serviço e seus lançamentos de comissão na mesma
// transação (filhos antes do pai). Retorna gorm.ErrRecordNotFound se o
// serviço não existe.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.Lancamentos.WithDB(tx).DeleteByServicoID(id); err != nil {
			return err
		}
		res := tx.Delete(&Servico{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ClienteExiste confere se o cliente referenciado existe. A consulta é
// por nome de tabela para não criar ciclo de import com o pacote cliente.
func (r *Repository) ClienteExiste(clienteID uint) (bool, error) {
	var n int64
	err := r.DB.Table("clientes").Where("id = ?", clienteID).Count(&n).Error
	return n > 0, err
}

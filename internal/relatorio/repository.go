// Pacote relatorio deriva visões somente-leitura das tabelas de
// serviços, comissões, despesas e clientes. Nunca escreve em nenhuma
// delas.
package relatorio

import (
	"sort"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/money"
	"gorm.io/gorm"
)

// Repository encapsula as consultas de relatório.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Linha de serviço com o nome do cliente já resolvido.
type linhaServico struct {
	ServicoID           uint
	DataServico         time.Time
	Veiculo             string
	Placa               string
	ValorBruto          float64
	PorcentagemComissao float64
	ComissaoRecebida    float64
	ClienteID           uint
	Cliente             string
}

func (r *Repository) linhasServico() ([]linhaServico, error) {
	var linhas []linhaServico
	err := r.DB.Table("servicos").
		Select("servicos.id AS servico_id, servicos.data_servico, servicos.veiculo, servicos.placa, " +
			"servicos.valor_bruto, servicos.porcentagem_comissao, servicos.comissao_recebida, " +
			"servicos.cliente_id, clientes.nome AS cliente").
		Joins("JOIN clientes ON clientes.id = servicos.cliente_id").
		Order("servicos.data_servico DESC").
		Scan(&linhas).Error
	return linhas, err
}

func classificar(recebida, total float64) string {
	switch {
	case money.MaiorOuIgual(recebida, total) && money.Excede(total, 0):
		return SituacaoQuitado
	case money.Excede(recebida, 0):
		return SituacaoParcial
	default:
		return SituacaoPendente
	}
}

// Resumo calcula os totais do painel. Os valores monetários seguem a
// mesma convenção de arredondamento do livro-razão.
func (r *Repository) Resumo() (*Resumo, error) {
	linhas, err := r.linhasServico()
	if err != nil {
		return nil, err
	}

	res := &Resumo{}
	for _, l := range linhas {
		total := money.ComissaoTotal(l.ValorBruto, l.PorcentagemComissao)
		recebida := money.Round2(l.ComissaoRecebida)

		res.FaturamentoBruto = money.Soma(res.FaturamentoBruto, l.ValorBruto)
		res.ComissaoTotal = money.Soma(res.ComissaoTotal, total)
		res.ComissaoRecebida = money.Soma(res.ComissaoRecebida, recebida)
		if classificar(recebida, total) == SituacaoQuitado {
			res.ServicosQuitados++
		}
	}
	res.ComissaoPendente = money.Sub(res.ComissaoTotal, res.ComissaoRecebida)
	res.TotalServicos = int64(len(linhas))

	if err := r.DB.Model(&despesa.Despesa{}).Count(&res.TotalDespesas).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&despesa.Despesa{}).
		Select("COALESCE(SUM(valor), 0)").Scan(&res.DespesasTotal).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&despesa.Despesa{}).
		Where("pago = ?", true).
		Select("COALESCE(SUM(valor), 0)").Scan(&res.DespesasPagas).Error; err != nil {
		return nil, err
	}
	res.DespesasTotal = money.Round2(res.DespesasTotal)
	res.DespesasPagas = money.Round2(res.DespesasPagas)
	res.DespesasAbertas = money.Sub(res.DespesasTotal, res.DespesasPagas)

	if err := r.DB.Table("clientes").Count(&res.TotalClientes).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// Comissoes monta o relatório de comissões: linha por serviço, recebido
// por mês (do livro-razão) e totais por cliente.
func (r *Repository) Comissoes() (*RelatorioComissoes, error) {
	linhas, err := r.linhasServico()
	if err != nil {
		return nil, err
	}

	rel := &RelatorioComissoes{Servicos: make([]ComissaoServico, 0, len(linhas))}

	porCliente := map[uint]*TotalPorCliente{}
	for _, l := range linhas {
		total := money.ComissaoTotal(l.ValorBruto, l.PorcentagemComissao)
		recebida := money.Round2(l.ComissaoRecebida)
		rel.Servicos = append(rel.Servicos, ComissaoServico{
			ServicoID:        l.ServicoID,
			DataServico:      l.DataServico,
			Veiculo:          l.Veiculo,
			Placa:            l.Placa,
			ClienteID:        l.ClienteID,
			Cliente:          l.Cliente,
			ComissaoTotal:    total,
			ComissaoRecebida: recebida,
			ComissaoPendente: money.Sub(total, recebida),
			Situacao:         classificar(recebida, total),
		})

		c, ok := porCliente[l.ClienteID]
		if !ok {
			c = &TotalPorCliente{ClienteID: l.ClienteID, Cliente: l.Cliente}
			porCliente[l.ClienteID] = c
		}
		c.ComissaoTotal = money.Soma(c.ComissaoTotal, total)
		c.ComissaoRecebida = money.Soma(c.ComissaoRecebida, recebida)
		c.Servicos++
	}
	for _, c := range porCliente {
		rel.PorCliente = append(rel.PorCliente, *c)
	}
	sort.Slice(rel.PorCliente, func(i, j int) bool {
		return rel.PorCliente[i].Cliente < rel.PorCliente[j].Cliente
	})

	var lancamentos []comissao.Comissao
	if err := r.DB.
		Where("status = ?", comissao.StatusRecebido).
		Order("data_recebimento ASC").
		Find(&lancamentos).Error; err != nil {
		return nil, err
	}
	porMes := map[string]*TotalPorMes{}
	for _, lc := range lancamentos {
		mes := lc.DataRecebimento.Format("2006-01")
		m, ok := porMes[mes]
		if !ok {
			m = &TotalPorMes{Mes: mes}
			porMes[mes] = m
		}
		m.ValorRecebido = money.Soma(m.ValorRecebido, lc.Valor)
		m.Lancamentos++
	}
	for _, m := range porMes {
		rel.PorMes = append(rel.PorMes, *m)
	}
	sort.Slice(rel.PorMes, func(i, j int) bool { return rel.PorMes[i].Mes < rel.PorMes[j].Mes })

	return rel, nil
}

// Despesas retorna as despesas para exportação.
func (r *Repository) Despesas() ([]despesa.Despesa, error) {
	var despesas []despesa.Despesa
	err := r.DB.Order("data_vencimento DESC").Find(&despesas).Error
	return despesas, err
}

// Lancamentos retorna os lançamentos do livro-razão para exportação,
// mais recentes primeiro, direto do repositório do livro-razão.
func (r *Repository) Lancamentos() ([]comissao.Comissao, error) {
	return comissao.NewRepository(r.DB).ListAll()
}

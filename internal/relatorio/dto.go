package relatorio

import "time"

// Situações de comissão exibidas nos relatórios.
const (
	SituacaoPendente = "pendente"
	SituacaoParcial  = "parcial"
	SituacaoQuitado  = "quitado"
)

// Resumo é a visão agregada do painel: faturamento, comissões e despesas.
type Resumo struct {
	FaturamentoBruto float64 `json:"faturamentoBruto"`
	ComissaoTotal    float64 `json:"comissaoTotal"`
	ComissaoRecebida float64 `json:"comissaoRecebida"`
	ComissaoPendente float64 `json:"comissaoPendente"`
	DespesasTotal    float64 `json:"despesasTotal"`
	DespesasPagas    float64 `json:"despesasPagas"`
	DespesasAbertas  float64 `json:"despesasAbertas"`
	TotalClientes    int64   `json:"totalClientes"`
	TotalServicos    int64   `json:"totalServicos"`
	TotalDespesas    int64   `json:"totalDespesas"`
	ServicosQuitados int64   `json:"servicosQuitados"`
}

// ComissaoServico é a linha por serviço do relatório de comissões.
type ComissaoServico struct {
	ServicoID        uint      `json:"servicoId"`
	DataServico      time.Time `json:"dataServico"`
	Veiculo          string    `json:"veiculo"`
	Placa            string    `json:"placa"`
	ClienteID        uint      `json:"clienteId"`
	Cliente          string    `json:"cliente"`
	ComissaoTotal    float64   `json:"comissaoTotal"`
	ComissaoRecebida float64   `json:"comissaoRecebida"`
	ComissaoPendente float64   `json:"comissaoPendente"`
	Situacao         string    `json:"situacao"`
}

// TotalPorMes agrega os recebimentos do livro-razão por mês (AAAA-MM).
type TotalPorMes struct {
	Mes           string  `json:"mes"`
	ValorRecebido float64 `json:"valorRecebido"`
	Lancamentos   int     `json:"lancamentos"`
}

// TotalPorCliente agrega as comissões por cliente.
type TotalPorCliente struct {
	ClienteID        uint    `json:"clienteId"`
	Cliente          string  `json:"cliente"`
	ComissaoTotal    float64 `json:"comissaoTotal"`
	ComissaoRecebida float64 `json:"comissaoRecebida"`
	Servicos         int     `json:"servicos"`
}

// RelatorioComissoes é a resposta do GET /relatorios/comissoes.
type RelatorioComissoes struct {
	Servicos   []ComissaoServico `json:"servicos"`
	PorMes     []TotalPorMes     `json:"porMes"`
	PorCliente []TotalPorCliente `json:"porCliente"`
}

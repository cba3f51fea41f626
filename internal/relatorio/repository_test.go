package relatorio_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/relatorio"
	"github.com/oliveiramdo/api-gestao/internal/servico"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cliente.Cliente{}, &servico.Servico{}, &despesa.Despesa{}, &comissao.Comissao{}))
	return db
}

func criarServicoDe(t *testing.T, db *gorm.DB, clienteID uint, dia time.Time, bruto, pct float64) *servico.Servico {
	t.Helper()
	s := &servico.Servico{
		DataServico:         dia,
		Veiculo:             "Toyota Corolla",
		Placa:               "MNO3P45",
		ValorBruto:          bruto,
		PorcentagemComissao: pct,
		ClienteID:           clienteID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

// Cenário compartilhado: dois clientes, três serviços (um quitado, um
// parcial, um pendente), recebimentos em dois meses e duas despesas.
func popular(t *testing.T, db *gorm.DB) (quitado, parcial, pendente *servico.Servico) {
	t.Helper()
	eva := &cliente.Cliente{Nome: "Eva Martins"}
	require.NoError(t, db.Create(eva).Error)
	fabio := &cliente.Cliente{Nome: "Fábio Rocha"}
	require.NoError(t, db.Create(fabio).Error)

	dia := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	quitado = criarServicoDe(t, db, eva.ID, dia, 1000.00, 35)  // total 350,00
	parcial = criarServicoDe(t, db, eva.ID, dia, 480.00, 25)   // total 120,00
	pendente = criarServicoDe(t, db, fabio.ID, dia, 200.00, 50) // total 100,00

	ledger := comissao.NewLedger(db)
	janeiro := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	fevereiro := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	_, err := ledger.Receber(quitado.ID, 200.00, janeiro)
	require.NoError(t, err)
	_, err = ledger.Receber(quitado.ID, 150.00, fevereiro)
	require.NoError(t, err)
	_, err = ledger.Receber(parcial.ID, 40.00, fevereiro)
	require.NoError(t, err)

	require.NoError(t, db.Create(&despesa.Despesa{
		Descricao:      "Aluguel do box",
		Valor:          1200.00,
		DataVencimento: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Pago:           true,
	}).Error)
	require.NoError(t, db.Create(&despesa.Despesa{
		Descricao:      "Material de polimento",
		Valor:          350.50,
		DataVencimento: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	}).Error)
	return quitado, parcial, pendente
}

func TestResumo(t *testing.T) {
	db := novoBanco(t)
	popular(t, db)

	res, err := relatorio.NewRepository(db).Resumo()
	require.NoError(t, err)

	require.InDelta(t, 1680.00, res.FaturamentoBruto, 0.001)
	require.InDelta(t, 570.00, res.ComissaoTotal, 0.001)    // 350 + 120 + 100
	require.InDelta(t, 390.00, res.ComissaoRecebida, 0.001) // 350 + 40
	require.InDelta(t, 180.00, res.ComissaoPendente, 0.001)
	require.InDelta(t, 1550.50, res.DespesasTotal, 0.001)
	require.InDelta(t, 1200.00, res.DespesasPagas, 0.001)
	require.InDelta(t, 350.50, res.DespesasAbertas, 0.001)
	require.EqualValues(t, 2, res.TotalClientes)
	require.EqualValues(t, 3, res.TotalServicos)
	require.EqualValues(t, 2, res.TotalDespesas)
	require.EqualValues(t, 1, res.ServicosQuitados)
}

func TestComissoesClassificaEAgrupa(t *testing.T) {
	db := novoBanco(t)
	quitado, parcial, pendente := popular(t, db)

	rel, err := relatorio.NewRepository(db).Comissoes()
	require.NoError(t, err)
	require.Len(t, rel.Servicos, 3)

	situacoes := map[uint]string{}
	for _, s := range rel.Servicos {
		situacoes[s.ServicoID] = s.Situacao
	}
	require.Equal(t, relatorio.SituacaoQuitado, situacoes[quitado.ID])
	require.Equal(t, relatorio.SituacaoParcial, situacoes[parcial.ID])
	require.Equal(t, relatorio.SituacaoPendente, situacoes[pendente.ID])

	// por cliente, em ordem alfabética
	require.Len(t, rel.PorCliente, 2)
	require.Equal(t, "Eva Martins", rel.PorCliente[0].Cliente)
	require.InDelta(t, 470.00, rel.PorCliente[0].ComissaoTotal, 0.001)
	require.InDelta(t, 390.00, rel.PorCliente[0].ComissaoRecebida, 0.001)
	require.Equal(t, 2, rel.PorCliente[0].Servicos)
	require.Equal(t, "Fábio Rocha", rel.PorCliente[1].Cliente)
	require.InDelta(t, 0.00, rel.PorCliente[1].ComissaoRecebida, 0.001)

	// por mês, do livro-razão
	require.Len(t, rel.PorMes, 2)
	require.Equal(t, "2024-01", rel.PorMes[0].Mes)
	require.InDelta(t, 200.00, rel.PorMes[0].ValorRecebido, 0.001)
	require.Equal(t, 1, rel.PorMes[0].Lancamentos)
	require.Equal(t, "2024-02", rel.PorMes[1].Mes)
	require.InDelta(t, 190.00, rel.PorMes[1].ValorRecebido, 0.001)
	require.Equal(t, 2, rel.PorMes[1].Lancamentos)
}

func TestServicosCSV(t *testing.T) {
	db := novoBanco(t)
	popular(t, db)

	csvBytes, err := relatorio.NewRepository(db).ServicosCSV()
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	require.Len(t, linhas, 4) // cabeçalho + 3 serviços
	require.Equal(t,
		"Data,Veiculo,Placa,Cliente,Comissao Total,Comissao Recebida,Comissao Pendente,Situacao",
		linhas[0])
	require.Contains(t, string(csvBytes), "350.00,350.00,0.00,quitado")
	require.Contains(t, string(csvBytes), "120.00,40.00,80.00,parcial")
	require.Contains(t, string(csvBytes), "100.00,0.00,100.00,pendente")
}

func TestDespesasCSV(t *testing.T) {
	db := novoBanco(t)
	popular(t, db)

	csvBytes, err := relatorio.NewRepository(db).DespesasCSV()
	require.NoError(t, err)
	require.Contains(t, string(csvBytes), "Aluguel do box,1200.00,2024-01-05,sim")
	require.Contains(t, string(csvBytes), "Material de polimento,350.50,2024-02-05,nao")
}

func TestComissoesCSV(t *testing.T) {
	db := novoBanco(t)
	quitado, parcial, _ := popular(t, db)

	csvBytes, err := relatorio.NewRepository(db).ComissoesCSV()
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	require.Len(t, linhas, 4) // cabeçalho + 3 lançamentos
	require.Equal(t, "Servico,Valor,Data Recebimento,Status", linhas[0])
	require.Contains(t, string(csvBytes), fmt.Sprintf("%d,200.00,2024-01-15,recebido", quitado.ID))
	require.Contains(t, string(csvBytes), fmt.Sprintf("%d,150.00,2024-02-10,recebido", quitado.ID))
	require.Contains(t, string(csvBytes), fmt.Sprintf("%d,40.00,2024-02-10,recebido", parcial.ID))
}

func TestServicosPDFGeraDocumento(t *testing.T) {
	db := novoBanco(t)
	popular(t, db)

	pdfBytes, err := relatorio.NewRepository(db).ServicosPDF()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(pdfBytes), "%PDF-"))
}

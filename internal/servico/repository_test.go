package servico_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
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
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &servico.Servico{}, &comissao.Comissao{}))
	return db
}

func novoCliente(t *testing.T, db *gorm.DB) *cliente.Cliente {
	t.Helper()
	c := &cliente.Cliente{Nome: "Maria Souza"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateZeraCamposDoRazao(t *testing.T) {
	db := novoBanco(t)
	repo := servico.NewRepository(db)
	c := novoCliente(t, db)

	agora := time.Now()
	s := &servico.Servico{
		DataServico:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Veiculo:             "Fiat Argo",
		Placa:               "XYZ9A88",
		ValorBruto:          800.00,
		PorcentagemComissao: 40,
		ClienteID:           c.ID,
		// o payload não manda nesses campos
		ComissaoRecebida:        123.45,
		Quitado:                 true,
		DataRecebimentoComissao: &agora,
	}
	require.NoError(t, repo.Create(s))

	salvo, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	require.Zero(t, salvo.ComissaoRecebida)
	require.False(t, salvo.Quitado)
	require.Nil(t, salvo.DataRecebimentoComissao)
}

func TestUpdateRebaixaAcumuladoQuandoComissaoEncolhe(t *testing.T) {
	db := novoBanco(t)
	repo := servico.NewRepository(db)
	ledger := comissao.NewLedger(db)
	c := novoCliente(t, db)

	s := &servico.Servico{
		DataServico:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Veiculo:             "Fiat Argo",
		Placa:               "XYZ9A88",
		ValorBruto:          1000.00,
		PorcentagemComissao: 35,
		ClienteID:           c.ID,
	}
	require.NoError(t, repo.Create(s))

	_, err := ledger.Receber(s.ID, 300.00, time.Now())
	require.NoError(t, err)

	// edição derruba a comissão total para 200,00 (< 300,00 já recebidos)
	existente, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	novos := *existente
	novos.PorcentagemComissao = 20
	require.NoError(t, repo.Update(existente, &novos))

	salvo, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	require.InDelta(t, 200.00, salvo.ComissaoRecebida, 0.001)
	require.True(t, salvo.Quitado)
}

func TestUpdateMantemAcumuladoQuandoAindaCabe(t *testing.T) {
	db := novoBanco(t)
	repo := servico.NewRepository(db)
	ledger := comissao.NewLedger(db)
	c := novoCliente(t, db)

	s := &servico.Servico{
		DataServico:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Veiculo:             "Fiat Argo",
		Placa:               "XYZ9A88",
		ValorBruto:          1000.00,
		PorcentagemComissao: 35,
		ClienteID:           c.ID,
	}
	require.NoError(t, repo.Create(s))

	_, err := ledger.Receber(s.ID, 100.00, time.Now())
	require.NoError(t, err)

	existente, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	novos := *existente
	novos.ValorBruto = 900.00 // total vira 315,00; 100,00 ainda cabe
	require.NoError(t, repo.Update(existente, &novos))

	salvo, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	require.InDelta(t, 100.00, salvo.ComissaoRecebida, 0.001)
	require.False(t, salvo.Quitado)
}

func TestDeleteApagaLancamentosJunto(t *testing.T) {
	db := novoBanco(t)
	repo := servico.NewRepository(db)
	ledger := comissao.NewLedger(db)
	c := novoCliente(t, db)

	s := &servico.Servico{
		DataServico:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Veiculo:             "Fiat Argo",
		Placa:               "XYZ9A88",
		ValorBruto:          500.00,
		PorcentagemComissao: 30,
		ClienteID:           c.ID,
	}
	require.NoError(t, repo.Create(s))
	_, err := ledger.Receber(s.ID, 50.00, time.Now())
	require.NoError(t, err)
	_, err = ledger.Receber(s.ID, 25.00, time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(s.ID))

	var nServicos, nLancamentos int64
	require.NoError(t, db.Model(&servico.Servico{}).Count(&nServicos).Error)
	require.NoError(t, db.Model(&comissao.Comissao{}).Count(&nLancamentos).Error)
	require.Zero(t, nServicos)
	require.Zero(t, nLancamentos)

	require.ErrorIs(t, repo.Delete(s.ID), gorm.ErrRecordNotFound)
}

func TestClienteExiste(t *testing.T) {
	db := novoBanco(t)
	repo := servico.NewRepository(db)
	c := novoCliente(t, db)

	existe, err := repo.ClienteExiste(c.ID)
	require.NoError(t, err)
	require.True(t, existe)

	existe, err = repo.ClienteExiste(999)
	require.NoError(t, err)
	require.False(t, existe)
}

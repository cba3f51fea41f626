package cliente_test

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

func criarServicoDe(t *testing.T, db *gorm.DB, clienteID uint) *servico.Servico {
	t.Helper()
	s := &servico.Servico{
		DataServico:         time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Veiculo:             "Chevrolet Onix",
		Placa:               "DEF4G56",
		ValorBruto:          600.00,
		PorcentagemComissao: 30,
		ClienteID:           clienteID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestUpdateSoMexeNosDadosCadastrais(t *testing.T) {
	db := novoBanco(t)
	repo := cliente.NewRepository(db)

	c := &cliente.Cliente{Nome: "João Pereira", Telefone: "11 99999-0000"}
	require.NoError(t, repo.Create(c))

	atualizado, err := repo.Update(c.ID, &cliente.Cliente{
		Nome:     "João P. Silva",
		Telefone: "11 98888-1111",
		Email:    "joao@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, c.ID, atualizado.ID)
	require.Equal(t, "João P. Silva", atualizado.Nome)
	require.Equal(t, "joao@example.com", atualizado.Email)

	_, err = repo.Update(999, &cliente.Cliente{Nome: "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteApagaServicosELancamentosDoCliente(t *testing.T) {
	db := novoBanco(t)
	repo := cliente.NewRepository(db)
	ledger := comissao.NewLedger(db)

	alvo := &cliente.Cliente{Nome: "Ana Lima"}
	require.NoError(t, repo.Create(alvo))
	outro := &cliente.Cliente{Nome: "Bruno Costa"}
	require.NoError(t, repo.Create(outro))

	sAlvo := criarServicoDe(t, db, alvo.ID)
	sOutro := criarServicoDe(t, db, outro.ID)
	_, err := ledger.Receber(sAlvo.ID, 50.00, time.Now())
	require.NoError(t, err)
	_, err = ledger.Receber(sOutro.ID, 30.00, time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(alvo.ID))

	// sobra só o que é do outro cliente
	var servicos []servico.Servico
	require.NoError(t, db.Find(&servicos).Error)
	require.Len(t, servicos, 1)
	require.Equal(t, outro.ID, servicos[0].ClienteID)

	var lancamentos []comissao.Comissao
	require.NoError(t, db.Find(&lancamentos).Error)
	require.Len(t, lancamentos, 1)
	require.Equal(t, sOutro.ID, lancamentos[0].ServicoID)

	_, err = repo.FindByID(alvo.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, repo.Delete(alvo.ID), gorm.ErrRecordNotFound)
}

func TestListAllEmOrdemAlfabetica(t *testing.T) {
	db := novoBanco(t)
	repo := cliente.NewRepository(db)

	for _, nome := range []string{"Zeca", "Amanda", "Marcos"} {
		require.NoError(t, repo.Create(&cliente.Cliente{Nome: nome}))
	}

	clientes, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, clientes, 3)
	require.Equal(t, "Amanda", clientes[0].Nome)
	require.Equal(t, "Marcos", clientes[1].Nome)
	require.Equal(t, "Zeca", clientes[2].Nome)
}

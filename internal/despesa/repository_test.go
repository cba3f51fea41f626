package despesa_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/despesa"
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
	require.NoError(t, db.AutoMigrate(&despesa.Despesa{}))
	return db
}

func TestUpdatePago(t *testing.T) {
	db := novoBanco(t)
	repo := despesa.NewRepository(db)

	d := &despesa.Despesa{
		Descricao:      "Conta de luz",
		Valor:          240.80,
		DataVencimento: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(d))

	require.NoError(t, repo.UpdatePago(d.ID, true))
	salva, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	require.True(t, salva.Pago)

	// desmarcar também funciona
	require.NoError(t, repo.UpdatePago(d.ID, false))
	salva, err = repo.FindByID(d.ID)
	require.NoError(t, err)
	require.False(t, salva.Pago)

	require.ErrorIs(t, repo.UpdatePago(999, true), gorm.ErrRecordNotFound)
}

func TestDeleteByID(t *testing.T) {
	db := novoBanco(t)
	repo := despesa.NewRepository(db)

	d := &despesa.Despesa{
		Descricao:      "Cera automotiva",
		Valor:          89.90,
		DataVencimento: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(d))

	require.NoError(t, repo.DeleteByID(d.ID))
	require.ErrorIs(t, repo.DeleteByID(d.ID), gorm.ErrRecordNotFound)
}

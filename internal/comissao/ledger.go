package comissao

import (
	"errors"
	"fmt"
	"time"

	"github.com/oliveiramdo/api-gestao/internal/money"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Erros de domínio do livro-razão. O handler traduz cada um para o
// status HTTP adequado; nenhum deles deixa efeito colateral no banco.
var (
	ErrServicoNaoEncontrado = errors.New("serviço não encontrado")
	ErrValorInvalido        = errors.New("valor do recebimento deve ser maior que zero")
	ErrValorExcedeRestante  = errors.New("valor excede a comissão restante do serviço")
)

// Ledger é o único escritor dos campos de comissão do serviço
// (comissao_recebida, quitado, data_recebimento_comissao) e dos
// lançamentos na tabela comissoes. Mantém os dois lados consistentes:
// a soma dos lançamentos 'recebido' de um serviço é sempre igual ao
// acumulado comissao_recebida da linha do serviço.
type Ledger struct {
	DB *gorm.DB
}

// NewLedger cria o motor do livro-razão de comissões.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// Recebimento é o retorno de Receber, com o acumulado atualizado para o
// cliente aplicar na tela sem recarregar o dataset inteiro.
type Recebimento struct {
	ServicoID        uint      `json:"servicoId"`
	Valor            float64   `json:"valor"`
	ComissaoTotal    float64   `json:"comissaoTotal"`
	ComissaoRecebida float64   `json:"comissaoRecebida"`
	Quitado          bool      `json:"quitado"`
	DataRecebimento  time.Time `json:"dataRecebimento"`
}

// Projeção mínima da linha do serviço usada pelo motor. O pacote servico
// importa este pacote, então o acesso aqui é por nome de tabela.
type servicoRow struct {
	ID                  uint
	DataServico         time.Time
	ValorBruto          float64
	PorcentagemComissao float64
	ComissaoRecebida    float64
}

// lockServico trava a linha do serviço para a sequência lê-valida-grava.
// O sqlite usado nos testes não aceita SELECT ... FOR UPDATE; lá o único
// escritor do arquivo já serializa as transações.
func lockServico(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Receber registra um recebimento parcial ou total da comissão de um
// serviço: insere um lançamento 'recebido' e atualiza o acumulado e a
// flag quitado na linha do serviço, tudo na mesma transação.
func (l *Ledger) Receber(servicoID uint, valor float64, data time.Time) (*Recebimento, error) {
	if !money.Excede(valor, 0) {
		return nil, ErrValorInvalido
	}

	var resultado *Recebimento
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var sv servicoRow
		if err := lockServico(tx).Table("servicos").Where("id = ?", servicoID).Take(&sv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServicoNaoEncontrado
			}
			return fmt.Errorf("buscar serviço: %w", err)
		}

		total := money.ComissaoTotal(sv.ValorBruto, sv.PorcentagemComissao)
		atual := money.Round2(sv.ComissaoRecebida)
		novoAcumulado := money.Soma(atual, valor)
		if money.Excede(novoAcumulado, total) {
			return ErrValorExcedeRestante
		}

		lancamento := &Comissao{
			ServicoID:       servicoID,
			Valor:           money.Round2(valor),
			DataRecebimento: data,
			Status:          StatusRecebido,
		}
		if err := tx.Create(lancamento).Error; err != nil {
			return fmt.Errorf("registrar lançamento: %w", err)
		}

		quitado := money.MaiorOuIgual(novoAcumulado, total)
		if err := tx.Table("servicos").Where("id = ?", servicoID).Updates(map[string]interface{}{
			"comissao_recebida":         novoAcumulado,
			"quitado":                   quitado,
			"data_recebimento_comissao": data,
		}).Error; err != nil {
			return fmt.Errorf("atualizar acumulado do serviço: %w", err)
		}

		resultado = &Recebimento{
			ServicoID:        servicoID,
			Valor:            lancamento.Valor,
			ComissaoTotal:    total,
			ComissaoRecebida: novoAcumulado,
			Quitado:          quitado,
			DataRecebimento:  data,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// Desfazer apaga todos os lançamentos 'recebido' de um serviço e zera o
// acumulado na linha do serviço, na mesma transação. Não existe desfazer
// parcial; chamar de novo sobre um serviço já zerado não é erro.
func (l *Ledger) Desfazer(servicoID uint) error {
	return l.DB.Transaction(func(tx *gorm.DB) error {
		var sv servicoRow
		if err := lockServico(tx).Table("servicos").Where("id = ?", servicoID).Take(&sv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServicoNaoEncontrado
			}
			return fmt.Errorf("buscar serviço: %w", err)
		}

		if err := tx.Where("servico_id = ? AND status = ?", servicoID, StatusRecebido).
			Delete(&Comissao{}).Error; err != nil {
			return fmt.Errorf("apagar lançamentos: %w", err)
		}

		if err := tx.Table("servicos").Where("id = ?", servicoID).Updates(map[string]interface{}{
			"comissao_recebida":         0,
			"quitado":                   false,
			"data_recebimento_comissao": nil,
		}).Error; err != nil {
			return fmt.Errorf("zerar acumulado do serviço: %w", err)
		}
		return nil
	})
}

// BackfillLegado cria um lançamento sintético para cada serviço anterior
// à introdução do livro-razão: comissao_recebida > 0 sem nenhum
// lançamento correspondente. O lançamento recebe a data do próprio
// serviço e o valor do acumulado existente. Idempotente: serviços que já
// têm ao menos um lançamento não são tocados. Retorna quantos serviços
// foram ajustados.
func (l *Ledger) BackfillLegado() (int, error) {
	ajustados := 0
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var pendentes []servicoRow
		if err := tx.Table("servicos").
			Where("comissao_recebida > 0").
			Where("NOT EXISTS (SELECT 1 FROM comissoes WHERE comissoes.servico_id = servicos.id)").
			Find(&pendentes).Error; err != nil {
			return fmt.Errorf("buscar serviços legados: %w", err)
		}

		for _, sv := range pendentes {
			lancamento := &Comissao{
				ServicoID:       sv.ID,
				Valor:           money.Round2(sv.ComissaoRecebida),
				DataRecebimento: sv.DataServico,
				Status:          StatusRecebido,
			}
			if err := tx.Create(lancamento).Error; err != nil {
				return fmt.Errorf("criar lançamento sintético do serviço %d: %w", sv.ID, err)
			}
			ajustados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ajustados, nil
}

// SomaRecebida é a leitura de reconciliação: soma dos lançamentos
// 'recebido' de um serviço, arredondada para centavos. Deve bater com o
// acumulado comissao_recebida da linha do serviço.
func (l *Ledger) SomaRecebida(servicoID uint) (float64, error) {
	soma, err := NewRepository(l.DB).SumRecebidaByServicoID(servicoID)
	if err != nil {
		return 0, err
	}
	return money.Round2(soma), nil
}

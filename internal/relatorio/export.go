package relatorio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

func formatValor(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ServicosCSV exporta o relatório de comissões por serviço.
func (r *Repository) ServicosCSV() ([]byte, error) {
	rel, err := r.Comissoes()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Data", "Veiculo", "Placa", "Cliente", "Comissao Total", "Comissao Recebida", "Comissao Pendente", "Situacao"})
	for _, s := range rel.Servicos {
		_ = w.Write([]string{
			s.DataServico.Format("2006-01-02"),
			s.Veiculo,
			s.Placa,
			s.Cliente,
			formatValor(s.ComissaoTotal),
			formatValor(s.ComissaoRecebida),
			formatValor(s.ComissaoPendente),
			s.Situacao,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DespesasCSV exporta as despesas.
func (r *Repository) DespesasCSV() ([]byte, error) {
	despesas, err := r.Despesas()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Descricao", "Valor", "Vencimento", "Pago"})
	for _, d := range despesas {
		pago := "nao"
		if d.Pago {
			pago = "sim"
		}
		_ = w.Write([]string{
			d.Descricao,
			formatValor(d.Valor),
			d.DataVencimento.Format("2006-01-02"),
			pago,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ComissoesCSV exporta os lançamentos do livro-razão.
func (r *Repository) ComissoesCSV() ([]byte, error) {
	lancamentos, err := r.Lancamentos()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Servico", "Valor", "Data Recebimento", "Status"})
	for _, lc := range lancamentos {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(lc.ServicoID), 10),
			formatValor(lc.Valor),
			lc.DataRecebimento.Format("2006-01-02"),
			lc.Status,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ServicosPDF gera o relatório de comissões em PDF (paisagem, uma linha
// por serviço, totais no rodapé).
func (r *Repository) ServicosPDF() ([]byte, error) {
	rel, err := r.Comissoes()
	if err != nil {
		return nil, err
	}
	resumo, err := r.Resumo()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Oliveira Martelinho de Ouro - Relatorio de Comissoes", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 7, "Data", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Veiculo", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Placa", "1", 0, "C", true, 0, "")
	pdf.CellFormat(62, 7, "Cliente", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Comissao", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Recebida", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Pendente", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Situacao", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, s := range rel.Servicos {
		veiculo := s.Veiculo
		if len(veiculo) > 32 {
			veiculo = veiculo[:29] + "..."
		}
		cliente := s.Cliente
		if len(cliente) > 34 {
			cliente = cliente[:31] + "..."
		}
		pdf.CellFormat(25, 6, s.DataServico.Format("02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, veiculo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, s.Placa, "1", 0, "C", false, 0, "")
		pdf.CellFormat(62, 6, cliente, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, formatValor(s.ComissaoTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, formatValor(s.ComissaoRecebida), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, formatValor(s.ComissaoPendente), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, s.Situacao, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(277, 7, fmt.Sprintf(
		"Comissao total: R$ %s | Recebida: R$ %s | Pendente: R$ %s",
		formatValor(resumo.ComissaoTotal),
		formatValor(resumo.ComissaoRecebida),
		formatValor(resumo.ComissaoPendente),
	), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package servico

import (
	"errors"
	"strings"
	"time"
)

// ServicoDTO é o payload de criação/edição de serviço. A data vem como
// "AAAA-MM-DD", igual aos formulários da tela.
type ServicoDTO struct {
	DataServico         string  `json:"dataServico"`
	Veiculo             string  `json:"veiculo"`
	Placa               string  `json:"placa"`
	ValorBruto          float64 `json:"valorBruto"`
	PorcentagemComissao float64 `json:"porcentagemComissao"`
	Observacao          string  `json:"observacao"`
	ValorPago           float64 `json:"valorPago"`
	ClienteID           uint    `json:"clienteId"`
}

// Valida campos obrigatórios e faixas; retorna a data já interpretada.
func (d *ServicoDTO) Validar() (time.Time, error) {
	if strings.TrimSpace(d.DataServico) == "" {
		return time.Time{}, errors.New("dataServico é obrigatória")
	}
	data, err := time.Parse("2006-01-02", d.DataServico)
	if err != nil {
		return time.Time{}, errors.New("dataServico inválida, use o formato AAAA-MM-DD")
	}
	if strings.TrimSpace(d.Veiculo) == "" {
		return time.Time{}, errors.New("veiculo é obrigatório")
	}
	if strings.TrimSpace(d.Placa) == "" {
		return time.Time{}, errors.New("placa é obrigatória")
	}
	if d.ValorBruto < 0 {
		return time.Time{}, errors.New("valorBruto não pode ser negativo")
	}
	if d.PorcentagemComissao < 0 || d.PorcentagemComissao > 100 {
		return time.Time{}, errors.New("porcentagemComissao deve estar entre 0 e 100")
	}
	if d.ClienteID == 0 {
		return time.Time{}, errors.New("clienteId é obrigatório")
	}
	return data, nil
}

package backup

import (
	"time"

	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/servico"
)

// Snapshot é o retrato completo do banco: as quatro tabelas do sistema.
type Snapshot struct {
	Clientes  []cliente.Cliente   `json:"clientes"`
	Servicos  []servico.Servico   `json:"servicos"`
	Despesas  []despesa.Despesa   `json:"despesas"`
	Comissoes []comissao.Comissao `json:"comissoes"`
}

// Metadata descreve o arquivo de backup exportado.
type Metadata struct {
	ExportDate     time.Time `json:"exportDate"`
	Version        string    `json:"version"`
	TotalClientes  int       `json:"totalClientes"`
	TotalServicos  int       `json:"totalServicos"`
	TotalDespesas  int       `json:"totalDespesas"`
	TotalComissoes int       `json:"totalComissoes"`
}

// Backup é o envelope exportado/importado pela tela de backup.
type Backup struct {
	Snapshot
	Metadata Metadata `json:"metadata"`
}

package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/oliveiramdo/api-gestao/internal/backup"
	"github.com/oliveiramdo/api-gestao/internal/cliente"
	"github.com/oliveiramdo/api-gestao/internal/comissao"
	"github.com/oliveiramdo/api-gestao/internal/config"
	"github.com/oliveiramdo/api-gestao/internal/database"
	"github.com/oliveiramdo/api-gestao/internal/despesa"
	"github.com/oliveiramdo/api-gestao/internal/middleware"
	"github.com/oliveiramdo/api-gestao/internal/relatorio"
	"github.com/oliveiramdo/api-gestao/internal/servico"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	cfg.ConfigurarLog()

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	clienteHandler := cliente.NewHandler(db)
	servicoHandler := servico.NewHandler(db)
	despesaHandler := despesa.NewHandler(db)
	comissaoHandler := comissao.NewHandler(comissao.NewLedger(db), comissao.NewRepository(db))
	relatorioHandler := relatorio.NewHandler(db)
	backupHandler := backup.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de serviços
	r.HandleFunc("/servicos", servicoHandler.Criar).Methods("POST")
	r.HandleFunc("/servicos", servicoHandler.Listar).Methods("GET")
	r.HandleFunc("/servicos/{id}", servicoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/servicos/{id}", servicoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/servicos/{id}", servicoHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/servicos/{id}/comissoes", comissaoHandler.ListarPorServico).Methods("GET")

	// Rotas de despesas
	r.HandleFunc("/despesas", despesaHandler.Criar).Methods("POST")
	r.HandleFunc("/despesas", despesaHandler.Listar).Methods("GET")
	r.HandleFunc("/despesas/{id}", despesaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/despesas/{id}", despesaHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/despesas/{id}/pagamento", despesaHandler.AtualizarPagamento).Methods("PATCH")

	// Livro-razão de comissões
	r.HandleFunc("/comissoes/receber", comissaoHandler.Receber).Methods("POST")
	r.HandleFunc("/comissoes/desfazer", comissaoHandler.Desfazer).Methods("POST")
	r.HandleFunc("/comissoes/backfill", comissaoHandler.Backfill).Methods("POST")

	// Relatórios e exportações
	r.HandleFunc("/relatorios/resumo", relatorioHandler.Resumo).Methods("GET")
	r.HandleFunc("/relatorios/comissoes", relatorioHandler.Comissoes).Methods("GET")
	r.HandleFunc("/relatorios/servicos.csv", relatorioHandler.ServicosCSV).Methods("GET")
	r.HandleFunc("/relatorios/despesas.csv", relatorioHandler.DespesasCSV).Methods("GET")
	r.HandleFunc("/relatorios/comissoes.csv", relatorioHandler.ComissoesCSV).Methods("GET")
	r.HandleFunc("/relatorios/servicos.pdf", relatorioHandler.ServicosPDF).Methods("GET")

	// Dados, backup e importação
	r.HandleFunc("/dados", backupHandler.Dados).Methods("GET")
	r.HandleFunc("/backup", backupHandler.Exportar).Methods("GET")
	r.HandleFunc("/importar", backupHandler.Importar).Methods("POST")

	// Operação
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	handler := middleware.Recovery(middleware.Logging(middleware.Metrics(c.Handler(r))))

	endereco := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("endereco", endereco).Info("servidor no ar")
	logrus.Fatal(http.ListenAndServe(endereco, handler))
}

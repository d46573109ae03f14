package server

import (
	"net/http"

	"github.com/KromaEnergia/erp-admin/internal/auth"
	"github.com/KromaEnergia/erp-admin/internal/categorias"
	"github.com/KromaEnergia/erp-admin/internal/config"
	"github.com/KromaEnergia/erp-admin/internal/fornecedores"
	"github.com/KromaEnergia/erp-admin/internal/integracao"
	"github.com/KromaEnergia/erp-admin/internal/menu"
	"github.com/KromaEnergia/erp-admin/internal/produtos"
	"github.com/KromaEnergia/erp-admin/internal/subcategorias"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps reúne o que o router injeta nos handlers.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Relogio  utils.Relogio
	Cifrador utils.Cifrador
	Log      *zap.Logger
}

const rotaID = "/{id:[0-9]+}"

func NovoRouter(d Deps) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	if d.Config.AuthHabilitada() {
		emissor := auth.NovoEmissor(d.Config.JWTSecret, d.Config.JWTTTL, d.Relogio)
		authHandler := auth.NewHandler(emissor, d.Config.AdminUsuario, d.Config.AdminSenhaHash, d.Log)
		api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
		api.Use(emissor.Middleware)
	} else {
		d.Log.Warn("JWT_SECRET vazio: rotas /api sem autenticação")
	}

	// Handlers
	categoriaHandler := categorias.NewHandler(categorias.NewRepository(d.DB), d.Relogio, d.Log)
	subcategoriaHandler := subcategorias.NewHandler(subcategorias.NewRepository(d.DB), d.Relogio, d.Log)
	produtoHandler := produtos.NewHandler(produtos.NewRepository(d.DB), d.Relogio, d.Log)
	fornecedorHandler := fornecedores.NewHandler(fornecedores.NewRepository(d.DB), d.Relogio, d.Log)
	integracaoHandler := integracao.NewHandler(integracao.NewRepository(d.DB), d.Cifrador, d.Relogio, d.Log)

	// Rotas de categorias
	api.HandleFunc("/categorias", categoriaHandler.Listar).Methods("GET")
	api.HandleFunc("/categorias/todas", categoriaHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/categorias", categoriaHandler.Criar).Methods("POST")
	api.HandleFunc("/categorias"+rotaID, categoriaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/categorias"+rotaID, categoriaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/categorias"+rotaID, categoriaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/categorias"+rotaID+"/subcategorias", subcategoriaHandler.ListarPorCategoria).Methods("GET")

	// Rotas de subcategorias
	api.HandleFunc("/subcategorias", subcategoriaHandler.Listar).Methods("GET")
	api.HandleFunc("/subcategorias", subcategoriaHandler.Criar).Methods("POST")
	api.HandleFunc("/subcategorias"+rotaID, subcategoriaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/subcategorias"+rotaID, subcategoriaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/subcategorias"+rotaID, subcategoriaHandler.Deletar).Methods("DELETE")

	// Rotas de produtos
	api.HandleFunc("/produtos", produtoHandler.Listar).Methods("GET")
	api.HandleFunc("/produtos", produtoHandler.Criar).Methods("POST")
	api.HandleFunc("/produtos"+rotaID, produtoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/produtos"+rotaID, produtoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/produtos"+rotaID, produtoHandler.Deletar).Methods("DELETE")

	// Rotas de fornecedores
	api.HandleFunc("/fornecedores", fornecedorHandler.Listar).Methods("GET")
	api.HandleFunc("/fornecedores", fornecedorHandler.Criar).Methods("POST")
	api.HandleFunc("/fornecedores"+rotaID, fornecedorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/fornecedores"+rotaID, fornecedorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/fornecedores"+rotaID, fornecedorHandler.Deletar).Methods("DELETE")

	// Integração Tiny
	api.HandleFunc("/tiny-config", integracaoHandler.Salvar).Methods("POST")
	api.HandleFunc("/tiny-config", integracaoHandler.Buscar).Methods("GET")

	api.HandleFunc("/menu", menu.Handler).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: d.Config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
	})
	// log por fora do mux para registrar também 404/405 e preflight
	return RequestLog(d.Log.Named("http"))(Recuperar(d.Log)(c.Handler(r)))
}

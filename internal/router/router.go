package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/clock"
	"github.com/Finisterre/bastetmania/internal/config"
	"github.com/Finisterre/bastetmania/internal/handler"
	"github.com/Finisterre/bastetmania/internal/middleware"
	"github.com/Finisterre/bastetmania/internal/repository"
	"github.com/Finisterre/bastetmania/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	clk := clock.System{}

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	estadisticasSvc := service.NewEstadisticasService(ventaRepo, rdb, clk)
	productoSvc := service.NewProductoService(productoRepo, estadisticasSvc)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, ticketRepo, estadisticasSvc, clk)
	ticketSvc := service.NewTicketService(ticketRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	ticketsH := handler.NewTicketsHandler(ticketSvc, ventaSvc)
	estadisticasH := handler.NewEstadisticasHandler(estadisticasSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		prods := v1.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.POST("", productosH.Crear)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
		}

		tickets := v1.Group("/tickets")
		{
			tickets.GET("/activo", ticketsH.ObtenerActivo)
			tickets.POST("", ticketsH.Crear)
			tickets.PUT("/activo", ticketsH.Actualizar)
			tickets.POST("/ventas", ticketsH.Vender)
		}

		estadisticas := v1.Group("/estadisticas")
		{
			estadisticas.GET("/hoy", estadisticasH.Hoy)
			estadisticas.GET("/rango", estadisticasH.Rango)
			estadisticas.GET("/rango/pdf", estadisticasH.RangoPDF)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/docs"
	v1 "github.com/vietanh2810/raffle-api/internal/api/handler/v1"
	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/config"
	"github.com/vietanh2810/raffle-api/internal/repository"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
	"github.com/vietanh2810/raffle-api/internal/service"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Tickets *service.TicketService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	raffleRepo := repository.NewRaffleRepository(dao.NewRaffleDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db), raffleRepo)

	raffleHandler, raffleSvc := s.initRaffleHandler(db, raffleRepo, ticketRepo)
	ticketHandler := s.initTicketHandler(raffleRepo, ticketRepo, raffleSvc)
	s.MountHandlers(raffleHandler, ticketHandler)

	return s
}

func (s *Server) initRaffleHandler(db *gorm.DB, raffleRepo *repository.RaffleRepository,
	ticketRepo *repository.TicketRepository) (*v1.RaffleHandler, *service.RaffleService) {
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewRaffleService(raffleRepo, categoryRepo, ticketRepo)
	handler := v1.NewRaffleHandler(svc)

	return handler, svc
}

func (s *Server) initTicketHandler(raffleRepo *repository.RaffleRepository, ticketRepo *repository.TicketRepository,
	raffleSvc *service.RaffleService) *v1.TicketHandler {
	s.Tickets = service.NewTicketService(raffleRepo, ticketRepo, service.Limits{
		MaxTicketsPerPurchase: s.Config.Raffle.MaxTicketsPerPurchase,
		MaxAllocationAttempts: s.Config.Raffle.MaxAllocationAttempts,
	})
	handler := v1.NewTicketHandler(s.Tickets, raffleSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(raffleHandler *v1.RaffleHandler, ticketHandler *v1.TicketHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/", v1.HandleHealthcheck)
		public.GET("/categories", raffleHandler.HandleListCategories)
		public.GET("/stats", raffleHandler.HandleGetStats)
		public.GET("/raffles", raffleHandler.HandleListRaffles)
		public.GET("/raffles/:raffleID", raffleHandler.HandleGetRaffle)
		public.GET("/raffles/:raffleID/ticket-numbers", ticketHandler.HandleAllocateTicketNumbers)
		public.POST("/raffles/:raffleID/tickets", ticketHandler.HandlePurchaseTickets)
		public.GET("/tickets", ticketHandler.HandleListTicketsByEmail)
	}

	organizers := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		organizers.POST("/raffles", raffleHandler.HandleCreateRaffle)
		organizers.GET("/me/raffles", raffleHandler.HandleListMyRaffles)
		organizers.PATCH("/raffles/:raffleID/status", raffleHandler.HandleUpdateRaffleStatus)
		organizers.GET("/raffles/:raffleID/dashboard", ticketHandler.HandleGetDashboard)
		organizers.GET("/raffles/:raffleID/participants", ticketHandler.HandleListParticipants)
		organizers.POST("/raffles/:raffleID/reconcile", ticketHandler.HandleReconcileRaffle)
		organizers.PATCH("/tickets/:ticketID/payment-status", ticketHandler.HandleUpdatePaymentStatus)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

package main

import (
	"database/sql"
	"log"

	"github.com/Maxito7/recepcion_backend/internal/application"
	"github.com/Maxito7/recepcion_backend/internal/config"
	"github.com/Maxito7/recepcion_backend/internal/infrastructure/repository"
	handlers "github.com/Maxito7/recepcion_backend/internal/interfaces/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Cualquier error no manejado se convierte en un 500 genérico sin
		// filtrar detalles internos
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error interno: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error interno del servidor",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	reloj := application.RelojSistema{}

	// Empleados
	empleadoRepo := repository.NewEmpleadoRepository(db)
	empleadoService := application.NewEmpleadoService(empleadoRepo)
	empleadoHandler := handlers.NewEmpleadoHandler(empleadoService)

	// Registros de empleados
	registroRepo := repository.NewRegistroRepository(db)
	registroService := application.NewRegistroService(registroRepo, empleadoRepo)
	registroHandler := handlers.NewRegistroHandler(registroService)

	// Visitas y coberturas
	personaRepo := repository.NewPersonaRepository(db)
	coberturaRepo := repository.NewCoberturaRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)
	visitaService := application.NewVisitaService(visitaRepo, reloj)
	coberturaService := application.NewCoberturaService(personaRepo, coberturaRepo)
	personaService := application.NewPersonaService(personaRepo)
	visitaHandler := handlers.NewVisitaHandler(visitaService, coberturaService, personaService)

	// Rutas de empleados
	empleados := app.Group("/empleados")
	empleados.Post("/", empleadoHandler.CrearEmpleado)
	empleados.Get("/", empleadoHandler.ListEmpleados)
	empleados.Get("/:id", empleadoHandler.GetEmpleado)
	empleados.Put("/:id", empleadoHandler.ActualizarEmpleado)
	empleados.Delete("/:id", empleadoHandler.EliminarEmpleado)

	// Rutas de registros
	registros := app.Group("/registros")
	registros.Post("/", registroHandler.CrearRegistro)
	registros.Get("/", registroHandler.ListRegistros)
	registros.Get("/:id", registroHandler.GetRegistro)
	registros.Put("/:id", registroHandler.ActualizarRegistro)
	registros.Delete("/:id", registroHandler.EliminarRegistro)

	// Rutas de visitas
	visitas := app.Group("/visitas")
	visitas.Post("/", visitaHandler.RegistrarVisita)
	visitas.Get("/", visitaHandler.ListVisitas)
	visitas.Get("/buscar-persona", visitaHandler.BuscarPersona)
	visitas.Post("/arl", visitaHandler.RegistrarARL)
	visitas.Post("/eps", visitaHandler.RegistrarEPS)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "API funcionando",
			"message": "Bienvenido al sistema de registro",
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/coreorbit/officehub-backend-go/internal/config"
	appHTTP "github.com/coreorbit/officehub-backend-go/internal/handler/http"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/database"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/jwt"
	"github.com/coreorbit/officehub-backend-go/internal/repository/postgresql"
	leaveService "github.com/coreorbit/officehub-backend-go/internal/service/leave"
	scheduleService "github.com/coreorbit/officehub-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	holidayRepo := postgresql.NewHolidayRepository(db)
	weeklyScheduleRepo := postgresql.NewWeeklyScheduleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := leaveService.NewCalculator()
	leaveSvc := leaveService.NewLeaveService(db, holidayRepo, weeklyScheduleRepo, calculator)
	scheduleSvc := scheduleService.NewScheduleService(db, weeklyScheduleRepo)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(JWTService, leaveHandler, scheduleHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

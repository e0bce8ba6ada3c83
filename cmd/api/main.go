package main

import (
	"fmt"
	"net/http"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/config"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/attendance"
	appHTTP "github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/aigen"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/clock"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/jwt"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/attendance"
	dashboardService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/dashboard"
	employeeService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/employee"
	eventService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/event"
	generationService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/generation"
	preferenceService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/preference"
	seasonalService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/seasonal"
	shiftService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/shift"
	storeService "github.com/shiftnavi/shiftnavi-backend-go/internal/service/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	preferenceRepo := postgresql.NewPreferenceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	seasonalRepo := postgresql.NewSeasonalRepository(db)
	constraintRepo := postgresql.NewConstraintRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.System()
	generator := aigen.NewClient(cfg.Generator)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	storeSvc := storeService.NewStoreService(storeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	preferenceSvc := preferenceService.NewPreferenceService(preferenceRepo, employeeRepo, systemClock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, systemClock, attendance.DefaultWindowPolicy)
	eventSvc := eventService.NewEventService(eventRepo)
	seasonalSvc := seasonalService.NewSeasonalService(seasonalRepo)
	generationSvc := generationService.NewGenerationService(
		employeeRepo,
		storeRepo,
		preferenceRepo,
		eventRepo,
		constraintRepo,
		constraintRepo,
		generator,
		shiftSvc,
	)
	dashboardSvc := dashboardService.NewDashboardService(eventRepo, seasonalRepo, attendanceSvc, systemClock)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Store:      appHTTP.NewStoreHandler(storeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Preference: appHTTP.NewPreferenceHandler(preferenceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Event:      appHTTP.NewEventHandler(eventSvc),
		Seasonal:   appHTTP.NewSeasonalHandler(seasonalSvc),
		Generation: appHTTP.NewGenerationHandler(generationSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

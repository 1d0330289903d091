package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/albaworks/timeclock-backend-go/internal/config"
	appHTTP "github.com/albaworks/timeclock-backend-go/internal/handler/http"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/database"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/jwt"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/metrics"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/session"
	"github.com/albaworks/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/albaworks/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/albaworks/timeclock-backend-go/internal/service/employee"
	payrollService "github.com/albaworks/timeclock-backend-go/internal/service/payroll"
	workRecordService "github.com/albaworks/timeclock-backend-go/internal/service/workrecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()

	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workRecordRepo := postgresql.NewWorkRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	sess := session.NewJWTSession()
	collector := metrics.NewCollector()

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	workRecordSvc := workRecordService.NewWorkRecordService(db, workRecordRepo, employeeRepo, sess, collector)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, workRecordRepo, collector)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	workRecordHandler := appHTTP.NewWorkRecordHandler(workRecordSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		collector,
		authHandler,
		employeeHandler,
		workRecordHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

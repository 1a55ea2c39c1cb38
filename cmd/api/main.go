package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/karthago-hr/paie-backend-go/internal/config"
	appHTTP "github.com/karthago-hr/paie-backend-go/internal/handler/http"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/metrics"
	"github.com/karthago-hr/paie-backend-go/internal/repository/postgresql"
	attendanceService "github.com/karthago-hr/paie-backend-go/internal/service/attendance"
	employeeService "github.com/karthago-hr/paie-backend-go/internal/service/employee"
	"github.com/karthago-hr/paie-backend-go/internal/service/leave"
	"github.com/karthago-hr/paie-backend-go/internal/service/master"
	payrollService "github.com/karthago-hr/paie-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	poolCfg := database.DefaultPoolConfig()
	poolCfg.MaxConns = int32(cfg.Database.MaxConns)
	poolCfg.MinConns = int32(cfg.Database.MinConns)
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), poolCfg)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, employeeRepo)
	leaveSvc := leave.NewLeaveService(leaveRepo, employeeRepo)
	masterSvc := master.NewMasterService(shiftRepo, holidayRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, eventRepo, leaveRepo, holidayRepo, salaryRepo, m)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		m,
		registry,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		masterHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

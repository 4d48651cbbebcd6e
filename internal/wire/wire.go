// Package wire provides dependency injection for the portfolio application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/example/portfolio/internal/adapters/notify"
	"github.com/example/portfolio/internal/adapters/sqlite"
	"github.com/example/portfolio/internal/app"
	"github.com/example/portfolio/internal/config"
	"github.com/example/portfolio/internal/db"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/metrics"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

var (
	settings  *config.Config
	logOutput io.Writer = os.Stderr

	database *sql.DB
	logger   *slog.Logger
	recorder *metrics.Recorder
	catalog  *i18n.Catalog

	areaService         primary.AreaService
	squadService        primary.SquadService
	memberService       primary.MemberService
	applicationService  primary.ApplicationService
	documentService     primary.DocumentService
	knowledgeService    primary.KnowledgeService
	feedbackService     primary.FeedbackService
	incidentService     primary.IncidentService
	improvementService  primary.ImprovementService
	supplierService     primary.SupplierService
	vehicleService      primary.VehicleService
	partNumberService   primary.PartNumberService
	auditService        primary.AuditService
	notificationService primary.NotificationService

	once sync.Once
)

// Configure sets the configuration used when services are first requested.
// It has no effect once any service has been built.
func Configure(cfg *config.Config) {
	settings = cfg
}

// Config returns the active configuration, loading the default file when
// Configure was never called.
func Config() *config.Config {
	if settings == nil {
		path, err := config.DefaultConfigPath()
		if err == nil {
			settings, err = config.LoadConfig(path)
		}
		if err != nil {
			fatal("failed to load configuration", err)
		}
	}
	return settings
}

// NewLogger builds the structured logger described by cfg.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg := Config()

	logger = NewLogger(cfg.Log, logOutput)
	slog.SetDefault(logger)

	var err error
	database, err = db.Open(cfg.Database.Path)
	if err != nil {
		fatal("failed to initialize database", err)
	}

	catalog, err = i18n.NewCatalog(cfg.Locale)
	if err != nil {
		fatal("failed to build message catalog", err)
	}

	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	areaRepo := sqlite.NewAreaRepository(database)
	squadRepo := sqlite.NewSquadRepository(database)
	memberRepo := sqlite.NewMemberRepository(database)
	appRepo := sqlite.NewApplicationRepository(database)
	docRepo := sqlite.NewDocumentRepository(database)
	knowledgeRepo := sqlite.NewKnowledgeRepository(database)
	feedbackRepo := sqlite.NewFeedbackRepository(database)
	incidentRepo := sqlite.NewIncidentRepository(database)
	improvementRepo := sqlite.NewImprovementRepository(database)
	supplierRepo := sqlite.NewSupplierRepository(database)
	vehicleRepo := sqlite.NewVehicleRepository(database)
	partRepo := sqlite.NewPartNumberRepository(database)
	auditRepo := sqlite.NewAuditLogRepository(database)
	notificationRepo := sqlite.NewNotificationRepository(database)

	notifier := newNotifier(cfg.Notifications.Sink, notificationRepo, logger)

	deps := app.EngineDeps{
		Tx:       sqlite.NewTransactor(database),
		Catalog:  catalog,
		Audit:    auditRepo,
		Metrics:  recorder,
		Logger:   logger,
		PageSize: cfg.Paging.DefaultPageSize,
	}

	// Create services (primary ports implementation)
	areaService = app.NewAreaService(areaRepo, memberRepo, deps)
	squadService = app.NewSquadService(squadRepo, deps)
	memberService = app.NewMemberService(memberRepo, squadRepo, knowledgeRepo, deps)
	applicationService = app.NewApplicationService(appRepo, areaRepo, squadRepo, deps)
	documentService = app.NewDocumentService(docRepo, appRepo, deps)
	knowledgeService = app.NewKnowledgeService(knowledgeRepo, memberRepo, appRepo, deps)
	feedbackService = app.NewFeedbackService(feedbackRepo, appRepo, memberRepo, notifier, deps)
	incidentService = app.NewIncidentService(incidentRepo, appRepo, memberRepo, notifier, deps)
	improvementService = app.NewImprovementService(improvementRepo, appRepo, memberRepo, notifier, deps)
	supplierService = app.NewSupplierService(supplierRepo, deps)
	vehicleService = app.NewVehicleService(vehicleRepo, deps)
	partNumberService = app.NewPartNumberService(partRepo, supplierRepo, deps)
	auditService = app.NewAuditService(auditRepo)
	notificationService = app.NewNotificationService(notificationRepo)
}

func newNotifier(sink string, repo secondary.NotificationRepository, log *slog.Logger) secondary.Notifier {
	if sink == config.SinkLog {
		return notify.NewLogNotifier(log)
	}
	return notify.NewOutbox(repo)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// DB returns the shared database connection.
func DB() *sql.DB {
	once.Do(initServices)
	return database
}

// Logger returns the application logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// Metrics returns the operation recorder; nil when metrics are disabled.
func Metrics() *metrics.Recorder {
	once.Do(initServices)
	return recorder
}

// Close releases the database connection if it was opened.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// AreaService returns the singleton AreaService instance.
func AreaService() primary.AreaService {
	once.Do(initServices)
	return areaService
}

// SquadService returns the singleton SquadService instance.
func SquadService() primary.SquadService {
	once.Do(initServices)
	return squadService
}

// MemberService returns the singleton MemberService instance.
func MemberService() primary.MemberService {
	once.Do(initServices)
	return memberService
}

// ApplicationService returns the singleton ApplicationService instance.
func ApplicationService() primary.ApplicationService {
	once.Do(initServices)
	return applicationService
}

// DocumentService returns the singleton DocumentService instance.
func DocumentService() primary.DocumentService {
	once.Do(initServices)
	return documentService
}

// KnowledgeService returns the singleton KnowledgeService instance.
func KnowledgeService() primary.KnowledgeService {
	once.Do(initServices)
	return knowledgeService
}

// FeedbackService returns the singleton FeedbackService instance.
func FeedbackService() primary.FeedbackService {
	once.Do(initServices)
	return feedbackService
}

// IncidentService returns the singleton IncidentService instance.
func IncidentService() primary.IncidentService {
	once.Do(initServices)
	return incidentService
}

// ImprovementService returns the singleton ImprovementService instance.
func ImprovementService() primary.ImprovementService {
	once.Do(initServices)
	return improvementService
}

// SupplierService returns the singleton SupplierService instance.
func SupplierService() primary.SupplierService {
	once.Do(initServices)
	return supplierService
}

// VehicleService returns the singleton VehicleService instance.
func VehicleService() primary.VehicleService {
	once.Do(initServices)
	return vehicleService
}

// PartNumberService returns the singleton PartNumberService instance.
func PartNumberService() primary.PartNumberService {
	once.Do(initServices)
	return partNumberService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// NotificationService returns the singleton NotificationService instance.
func NotificationService() primary.NotificationService {
	once.Do(initServices)
	return notificationService
}

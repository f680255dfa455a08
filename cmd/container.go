package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/staffhive/staffhive/marketplace/applicant/applicantinfra"
	"github.com/staffhive/staffhive/marketplace/applicant/applicantsrv"
	"github.com/staffhive/staffhive/marketplace/application/applicationapi"
	"github.com/staffhive/staffhive/marketplace/application/applicationinfra"
	"github.com/staffhive/staffhive/marketplace/application/applicationsrv"
	"github.com/staffhive/staffhive/marketplace/hiring/hiringapi"
	"github.com/staffhive/staffhive/marketplace/hiring/hiringinfra"
	"github.com/staffhive/staffhive/marketplace/hiring/hiringsrv"
	"github.com/staffhive/staffhive/marketplace/job/jobinfra"
	"github.com/staffhive/staffhive/marketplace/recruiter/recruiterinfra"
	"github.com/staffhive/staffhive/marketplace/stats"
	"github.com/staffhive/staffhive/marketplace/stats/statsapi"
	"github.com/staffhive/staffhive/marketplace/stats/statsinfra"
	"github.com/staffhive/staffhive/marketplace/stats/statssrv"
	"github.com/staffhive/staffhive/marketplace/stats/worker"
	"github.com/staffhive/staffhive/pkg/iam/auth"
	"github.com/staffhive/staffhive/pkg/logx"
	"github.com/staffhive/staffhive/pkg/storex"
	"github.com/staffhive/staffhive/pkg/storex/storexdynamo"
	"github.com/staffhive/staffhive/pkg/storex/storexmem"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Store storex.RecordStore
	Redis *redis.Client

	// Services
	ApplicationService *applicationsrv.ApplicationService
	LifecycleService   *hiringsrv.LifecycleService
	StatsService       *statssrv.StatsService
	ReconcileWorker    *worker.ReconcileWorker

	// API Handlers
	ApplicationHandlers *applicationapi.Handlers
	HiringHandlers      *hiringapi.Handlers
	StatsHandlers       *statsapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Record Store
	switch os.Getenv("STORE_DRIVER") {
	case "", "dynamo":
		awsRegion := os.Getenv("AWS_REGION")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}

		// DYNAMO_ENDPOINT points at dynamodb-local in dev
		endpoint := os.Getenv("DYNAMO_ENDPOINT")
		client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		})
		c.Store = storexdynamo.NewDynamoStore(client, os.Getenv("TABLE_PREFIX"))

	case "memory":
		logx.Warn("STORE_DRIVER=memory: all data is lost on restart")
		c.Store = storexmem.NewMemoryStore()

	default:
		logx.Fatalf("unknown STORE_DRIVER %q", os.Getenv("STORE_DRIVER"))
	}

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	tokenService := auth.NewTokenService([]byte(jwtSecret), "staffhive", 24*time.Hour)
	c.AuthMiddleware = auth.Middleware(tokenService)
}

func (c *Container) initServices() {
	// --- Repositories ---
	staffRepo := applicantinfra.NewStoreStaffRepository(c.Store)
	instituteRepo := applicantinfra.NewStoreInstituteRepository(c.Store)
	jobRepo := jobinfra.NewStoreJobRepository(c.Store)
	recruiterRepo := recruiterinfra.NewStoreRecruiterRepository(c.Store)
	hiringRepo := hiringinfra.NewStoreHiringRepository(c.Store)

	staffApps := applicationinfra.NewStaffApplicationRepository(staffRepo)
	instituteApps := applicationinfra.NewInstituteApplicationRepository(c.Store)

	// --- Queues ---
	var reconcileQueue stats.ReconcileQueue = statsinfra.NewRedisReconcileQueue(c.Redis, "stats:reconcile")

	// --- Domain Services ---
	resolver := applicantsrv.NewResolver(staffRepo, instituteRepo)

	c.ApplicationService = applicationsrv.NewApplicationService(
		resolver,
		staffApps,
		instituteApps,
		staffRepo,
		jobRepo,
	)

	c.LifecycleService = hiringsrv.NewLifecycleService(
		staffApps,
		instituteApps,
		hiringRepo,
		recruiterRepo,
		instituteRepo,
		reconcileQueue,
	)

	c.StatsService = statssrv.NewStatsService(
		staffRepo,
		instituteRepo,
		instituteApps,
		jobRepo,
		recruiterRepo,
	)

	workers := 2
	if raw := os.Getenv("RECONCILE_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			workers = n
		}
	}
	c.ReconcileWorker = worker.NewReconcileWorker(c.StatsService, reconcileQueue, workers)

	// --- Handlers ---
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.HiringHandlers = hiringapi.NewHandlers(c.LifecycleService)
	c.StatsHandlers = statsapi.NewHandlers(c.StatsService)
}

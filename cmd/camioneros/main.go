package main

import (
	"log"
	"time"

	"github.com/loscamioneros/web/internal/audit"
	"github.com/loscamioneros/web/internal/auth"
	"github.com/loscamioneros/web/internal/config"
	"github.com/loscamioneros/web/internal/db"
	"github.com/loscamioneros/web/internal/logging"
	"github.com/loscamioneros/web/internal/photostore/local"
	"github.com/loscamioneros/web/internal/recordstore"
	"github.com/loscamioneros/web/internal/store"
	"github.com/loscamioneros/web/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	records, closeStore, err := newRecordStore(cfg)
	if err != nil {
		logger.Error("failed to initialize record store", "backend", cfg.StoreBackend, "error", err)
		return
	}
	defer closeStore()

	uploads, err := local.NewLocalPhotoStore(cfg.PublicPath)
	if err != nil {
		logger.Error("failed to initialize upload store", "error", err)
		return
	}

	sessions, err := auth.NewSessions(cfg.SessionMode, []byte(cfg.SessionSecret))
	if err != nil {
		logger.Error("failed to initialize sessions", "error", err)
		return
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil || sessionTTL <= 0 {
		logger.Warn("invalid SESSION_TTL, using 24h", "value", cfg.SessionTTL)
		sessionTTL = 24 * time.Hour
	}

	auditStore := store.NewAuditStore(records, logger)
	recorder := audit.NewRecorder(auditStore, logger)
	defer recorder.Flush()

	server := web.NewServer(web.Deps{
		Credentials:    auth.NewCredentials(cfg.AdminUsername, cfg.AdminPassword),
		Sessions:       sessions,
		Dishes:         store.NewDishStore(records, logger),
		Gallery:        store.NewGalleryStore(records, logger),
		AuditLog:       auditStore,
		PhotoMeta:      store.NewPhotoMetaStore(records, logger),
		Uploads:        uploads,
		Recorder:       recorder,
		Logger:         logger,
		PublicPath:     cfg.PublicPath,
		MaxUploadBytes: cfg.MaxUploadMB << 20,
		SessionTTL:     sessionTTL,
		SecureCookies:  cfg.Production(),
	})

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newRecordStore(cfg *config.Config) (recordstore.Store, func(), error) {
	switch cfg.StoreBackend {
	case "kv":
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return recordstore.NewKVStore(database), func() { _ = database.Close() }, nil
	default:
		fs, err := recordstore.NewFileStore(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/learnhub/internal/aiquiz"
	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/certificate"
	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/memstore"
	"github.com/saulo-duarte/learnhub/internal/progress"
	"github.com/saulo-duarte/learnhub/internal/router"
	"github.com/saulo-duarte/learnhub/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	CatalogContainer     *catalog.CatalogContainer
	EnrollmentContainer  *enrollment.EnrollmentContainer
	ProgressContainer    *progress.ProgressContainer
	AttemptContainer     *attempt.AttemptContainer
	CertificateContainer *certificate.CertificateContainer
	AIQuizContainer      *aiquiz.AIQuizContainer
	AuthHandler          *auth.Handler
}

// Stores groups the backing stores of every feature so gorm and memstore can be swapped as a unit.
type Stores struct {
	Users        user.Repository
	Catalog      catalog.Store
	Enrollments  enrollment.Store
	Progress     progress.Store
	Attempts     attempt.Store
	Certificates certificate.Store
}

func gormStores(ctx context.Context, settings *config.Settings) (*Stores, error) {
	if err := config.Connect(ctx, settings.DBDriver, settings.DatabaseDSN); err != nil {
		return nil, err
	}

	if settings.AutoMigrate {
		err := config.DB.WithContext(ctx).AutoMigrate(
			&user.User{},
			&catalog.Course{},
			&catalog.Quiz{},
			&catalog.Question{},
			&catalog.Option{},
			&enrollment.Enrollment{},
			&progress.Progress{},
			&attempt.Attempt{},
			&attempt.Answer{},
			&certificate.Certificate{},
		)
		if err != nil {
			return nil, err
		}
		config.WithContext(ctx).Info("Schema migrated")
	}

	return &Stores{
		Users:        user.NewRepository(config.DB),
		Catalog:      catalog.NewStore(config.DB),
		Enrollments:  enrollment.NewStore(config.DB),
		Progress:     progress.NewStore(config.DB),
		Attempts:     attempt.NewStore(config.DB),
		Certificates: certificate.NewStore(config.DB),
	}, nil
}

func memoryStores(ctx context.Context, settings *config.Settings) (*Stores, error) {
	db := memstore.New()

	if settings.IsDev() {
		student, err := memstore.SeedDemo(db)
		if err != nil {
			return nil, err
		}
		config.WithContext(ctx).WithField("user_id", student.ID).Info("Seeded demo student")
	}

	return &Stores{
		Users:        db.Users(),
		Catalog:      db.CatalogStore(),
		Enrollments:  db.EnrollmentStore(),
		Progress:     db.ProgressStore(),
		Attempts:     db.AttemptStore(),
		Certificates: db.CertificateStore(),
	}, nil
}

func Build(ctx context.Context, settings *config.Settings, stores *Stores, codec certificate.TokenCodec) *Container {
	catalogContainer := catalog.NewCatalogContainer(stores.Catalog)
	progressContainer := progress.NewProgressContainer(stores.Progress, settings.PassPolicy)

	attemptContainer := attempt.NewAttemptContainer(stores.Attempts, progressContainer.Recorder, attempt.Options{
		EnforceTimeLimit: settings.EnforceTimeLimit,
		Grace:            settings.TimeLimitGrace,
	})

	return &Container{
		UserContainer:        user.NewUserContainer(stores.Users),
		CatalogContainer:     catalogContainer,
		EnrollmentContainer:  enrollment.NewEnrollmentContainer(stores.Enrollments),
		ProgressContainer:    progressContainer,
		AttemptContainer:     attemptContainer,
		CertificateContainer: certificate.NewCertificateContainer(stores.Certificates, codec),
		AIQuizContainer:      aiquiz.NewAIQuizContainer(ctx, catalogContainer.Service, settings.GeminiModel),
		AuthHandler:          auth.NewHandler(settings.CookieDomain),
	}
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()
	settings := config.App

	open := gormStores
	if settings.DBDriver == config.DriverMemory {
		open = memoryStores
	}
	stores, err := open(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).WithField("driver", settings.DBDriver).Fatal("Failed to open store")
	}

	return Build(ctx, settings, stores, config.Crypto)
}

func (c *Container) Router(corsOrigins []string) http.Handler {
	return router.New(router.RouterConfig{
		CORSOrigins:        corsOrigins,
		UserHandler:        c.UserContainer.Handler,
		AuthHandler:        c.AuthHandler,
		CatalogHandler:     c.CatalogContainer.Handler,
		EnrollmentHandler:  c.EnrollmentContainer.Handler,
		AttemptHandler:     c.AttemptContainer.Handler,
		ProgressHandler:    c.ProgressContainer.Handler,
		CertificateHandler: c.CertificateContainer.Handler,
		AIQuizHandler:      c.AIQuizContainer.Handler,
	})
}

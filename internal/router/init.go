package router

import (
	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/container"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/postgres"
	handlers "github.com/kudoswall/kudos-wall-backend/internal/interface/http"
	"github.com/kudoswall/kudos-wall-backend/internal/router/modules"
)

// Deps holds the repositories, services and handlers built from the
// container singletons. Exposed as a struct so tests can build the same
// graph against in-memory repositories.
type Deps struct {
	Users      *postgres.UserRepository
	Roles      *postgres.RoleRepository
	Categories *postgres.CategoryRepository
	Kudos      *postgres.KudosRepository

	AuthSvc        *application.AuthService
	KudosSvc       *application.KudosService
	CategorySvc    *application.CategoryService
	UserSvc        *application.UserService
	TestSupportSvc *application.TestSupportService

	AuthHandler        *handlers.AuthHandler
	KudosHandler       *handlers.KudosHandler
	CategoryHandler    *handlers.CategoryHandler
	UserHandler        *handlers.UserHandler
	TestSupportHandler *handlers.TestSupportHandler
}

func buildDeps() Deps {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := postgres.NewUserRepository(pool)
	roles := postgres.NewRoleRepository(pool)
	categories := postgres.NewCategoryRepository(pool)
	kudos := postgres.NewKudosRepository(pool)

	authSvc := application.NewAuthService(users, roles, container.GetEmailService(), container.GetTokens(), logger)
	kudosSvc := application.NewKudosService(kudos, users, categories, logger)
	categorySvc := application.NewCategoryService(categories)
	userSvc := application.NewUserService(users)

	d := Deps{
		Users:      users,
		Roles:      roles,
		Categories: categories,
		Kudos:      kudos,

		AuthSvc:     authSvc,
		KudosSvc:    kudosSvc,
		CategorySvc: categorySvc,
		UserSvc:     userSvc,

		AuthHandler:     handlers.NewAuthHandler(authSvc, logger),
		KudosHandler:    handlers.NewKudosHandler(kudosSvc, logger),
		CategoryHandler: handlers.NewCategoryHandler(categorySvc, logger),
		UserHandler:     handlers.NewUserHandler(userSvc, logger),
	}

	if container.GetConfig().TestSupportEnabled() {
		d.TestSupportSvc = application.NewTestSupportService(users, kudos)
		d.TestSupportHandler = handlers.NewTestSupportHandler(d.TestSupportSvc, container.GetEmailCapture(), logger)
	}

	return d
}

// InitModules builds the dependency graph and registers every feature
// module on the registry. Called once during startup.
func InitModules(r *Registry) {
	d := buildDeps()

	r.Add(modules.NewAuthModule(d.AuthHandler))
	r.Add(modules.NewCategoryModule(d.CategoryHandler))
	r.Add(modules.NewUserModule(d.UserHandler))
	r.Add(modules.NewKudosModule(d.KudosHandler))

	if d.TestSupportHandler != nil {
		r.Add(modules.NewTestSupportModule(d.TestSupportHandler))
	}
}

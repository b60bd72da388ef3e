package namespace

import (
	"go.uber.org/fx"

	"github.com/schemapath/schemapath/v1/logger"
	"github.com/schemapath/schemapath/v1/observability"
	"github.com/schemapath/schemapath/v1/postgres"
)

// FXModule provides the namespace Manager and binds it to the database
// client once the client exists.
//
// The connect hook must be registered on the postgres.Config before the
// connection layer consumes it, which in fx is a decoration at the
// application root:
//
//	app := fx.New(
//		logger.FXModule,
//		postgres.FXModule,
//		namespace.FXModule,
//		fx.Provide(func() postgres.Config { return loadConfig() }),
//		fx.Decorate(namespace.DecorateConnectionConfig),
//	)
var FXModule = fx.Module("namespace",
	fx.Provide(NewManagerWithDI),
	fx.Invoke(BindManager),
)

// ManagerParams groups the dependencies needed to create a Manager via
// dependency injection. A namespace.Config is optional; its Logger and
// Observer fields are filled from the container when unset.
type ManagerParams struct {
	fx.In

	Config   Config                 `optional:"true"`
	Logger   *logger.Logger
	Observer observability.Observer `optional:"true"`
}

// NewManagerWithDI creates a Manager using dependency injection. It
// delegates to NewManager.
func NewManagerWithDI(params ManagerParams) (*Manager, error) {
	cfg := params.Config
	if cfg.Logger == nil {
		cfg.Logger = params.Logger
	}
	if cfg.Observer == nil {
		cfg.Observer = params.Observer
	}
	return NewManager(cfg)
}

// BindManager attaches the database client to the Manager once fx has built
// both.
func BindManager(m *Manager, client postgres.Client) {
	m.Bind(client)
}

// DecorateConnectionConfig registers the Manager's reconnect hook on the
// postgres.Config flowing through the container. Install it with
// fx.Decorate at the application root so the decorated config reaches the
// connection layer.
func DecorateConnectionConfig(cfg postgres.Config, m *Manager) (postgres.Config, error) {
	out, err := m.ConfigureConnection(&cfg)
	if err != nil {
		return postgres.Config{}, err
	}
	return *out, nil
}

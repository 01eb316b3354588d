package components

import (
	"time"

	"club-booking/internal/infra/client"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/config"
	"club-booking/internal/usecase"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCalendar,
)

var registryUseCaseModule = fx.Module("usecase/registry",
	usecaseBaseOption,
	fx.Provide(
		fx.Annotate(
			NewLedgerClient,
			fx.As(new(commands.BookingPurger)),
		),
		NewCascadePolicy,
		commands.NewMemberCommands,
		queries.NewMemberQueries,
		usecase.NewMembershipService,
	),
)

var ledgerUseCaseModule = fx.Module("usecase/ledger",
	usecaseBaseOption,
	fx.Provide(
		fx.Annotate(
			NewMembershipClient,
			fx.As(new(commands.MembershipChecker)),
		),
		commands.NewFieldCommands,
		commands.NewPoolCommands,
		commands.NewPurgeCommands,
		queries.NewFieldQueries,
		queries.NewPoolQueries,
		queries.NewBookingQueries,
		usecase.NewBookingLedger,
	),
)

func NewCalendar(clk clock.Clock, cfg config.Config) (*calendar.Calendar, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, err
	}
	return calendar.New(clk, loc), nil
}

func NewLedgerClient(cfg config.Config) *client.LedgerClient {
	return client.NewLedgerClient(cfg.Ledger)
}

func NewMembershipClient(cfg config.Config) *client.MembershipClient {
	return client.NewMembershipClient(cfg.Membership)
}

// NewCascadePolicy caps the purge step, retries included, at one ledger
// timeout per attempt.
func NewCascadePolicy(cfg config.Config) commands.CascadePolicy {
	return commands.CascadePolicy{
		MaxRetries:     cfg.Ledger.CascadeMaxRetries,
		InitialBackoff: cfg.Ledger.CascadeInitialBackoff,
		Budget:         cfg.Ledger.Timeout * time.Duration(cfg.Ledger.CascadeMaxRetries+1),
	}
}

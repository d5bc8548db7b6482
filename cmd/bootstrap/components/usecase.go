package components

import (
	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/config"
	"employee-discount/internal/usecase"
	"employee-discount/internal/usecase/commands"
	"employee-discount/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLimitPolicy,
	NewCodeFormat,
	NewQRCodec,
	NewCodeGenerator,
	NewCodeSettings,
	NewValidationSettings,
)

func NewLimitPolicy(cfg config.Config) (limit.Policy, error) {
	defaultLimit, err := cfg.Limit.DefaultMonthlyDecimal()
	if err != nil {
		return limit.Policy{}, err
	}
	basis, err := limit.ParseSpentBasis(cfg.Limit.SpentBasis)
	if err != nil {
		return limit.Policy{}, err
	}
	loc, err := cfg.Limit.Location()
	if err != nil {
		return limit.Policy{}, err
	}
	return limit.NewPolicy(defaultLimit, basis, loc)
}

func NewCodeFormat(cfg config.Config) (discountcode.Format, error) {
	return discountcode.NewFormat(cfg.Code.Prefix, cfg.Code.Length, cfg.Code.Alphabet)
}

func NewCodeGenerator(format discountcode.Format) commands.CodeGenerator {
	return format
}

func NewCodeSettings(cfg config.Config, format discountcode.Format) commands.CodeSettings {
	return commands.CodeSettings{Format: format, TTL: cfg.Code.TTL}
}

func NewQRCodec(cfg config.Config, format discountcode.Format) *discountcode.QRCodec {
	return discountcode.NewQRCodec(cfg.Code.SigningKey, format)
}

func NewValidationSettings(cfg config.Config) (commands.ValidationSettings, error) {
	maxAmount, err := cfg.Validation.MaxAmountDecimal()
	if err != nil {
		return commands.ValidationSettings{}, err
	}
	return commands.ValidationSettings{
		Amounts:        ledger.AmountRule{Max: maxAmount},
		IdempotencyTTL: cfg.Validation.IdempotencyTTL,
	}, nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCodeUseCase,
		commands.NewValidationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpendingQueries,
		queries.NewCodeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

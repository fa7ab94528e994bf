package constants

import (
	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	AppKey       contextKey = "app"
	PoolKey      contextKey = "pool"
	TxKey        contextKey = "tx"
	ParamsKey    contextKey = "params"
	LoggerKey    contextKey = "logger"
	LocalizerKey contextKey = "localizer"
	LocaleKey    contextKey = "locale"
	PageContext  contextKey = "pageContext"
	RequestStart contextKey = "requestStart"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

package cerr

import (
	"errors"

	"github.com/apex/log"
)

func Log(err error) {
	entry(err).Error(err.Error())
}

// Warn is for failures that were recovered from, e.g. a provider in a fallback chain
func Warn(err error) {
	entry(err).Warn(err.Error())
}

func entry(err error) log.Interface {
	var ctxErr ContextualError
	if !errors.As(err, &ctxErr) {
		return log.Log
	}

	return log.WithFields(log.Fields(ctxErr.Context.ContextFields))
}

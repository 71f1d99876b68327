package cerr

import (
	"video-fetch-be/src/lib/werror"
)

var _ error = ContextualError{}

type ContextualError struct {
	werror.WError
	Context Context
}

type Context struct {
	ContextFields map[string]interface{}
}

type Wrapper struct {
	context Context
	cause   error
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Wrap(err error) Wrapper {
	return Context{}.Wrap(err)
}

func Error(message string) error {
	return Context{}.Error(message)
}

func (c Context) Field(key string, value interface{}) Context {
	fields := make(map[string]interface{}, len(c.ContextFields)+1)
	for k, v := range c.ContextFields {
		fields[k] = v
	}
	fields[key] = value

	return Context{ContextFields: fields}
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(message string) error {
	return c.Wrap(nil).Error(message)
}

func (w Wrapper) Error(message string) error {
	fields := map[string]interface{}{}

	// fields from inner contextual errors are kept so the log line carries the whole chain
	if inner, ok := w.cause.(ContextualError); ok {
		for k, v := range inner.Context.ContextFields {
			fields[k] = v
		}
	}

	for k, v := range w.context.ContextFields {
		fields[k] = v
	}

	return ContextualError{
		WError:  werror.WrapError(message, w.cause),
		Context: Context{ContextFields: fields},
	}
}

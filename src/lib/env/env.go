package env

import (
	"fmt"
	"os"
)

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

func Get() Environment {
	environment, err := Parse(os.Getenv("ENVIRONMENT"))
	if err != nil {
		panic(err.Error())
	}

	return environment
}

func Parse(value string) (Environment, error) {
	switch Environment(value) {
	case Production:
		return Production, nil
	case Development:
		return Development, nil
	case "":
		return "", fmt.Errorf("no environment var is set")
	default:
		return "", fmt.Errorf("invalid environment is set: %q", value)
	}
}

// DynamoDB and RabbitMQ are expected to run locally in development
func (e Environment) IsDevelopment() bool {
	return e == Development
}

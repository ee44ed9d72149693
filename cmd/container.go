package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/bumpwatch/application"
	"github.com/rios0rios0/bumpwatch/infrastructure/provider"
	"github.com/rios0rios0/bumpwatch/infrastructure/provider/github"
	"github.com/rios0rios0/bumpwatch/infrastructure/provider/gitlab"
)

// buildContainer wires the hosted providers and services into a DIG
// container. The local provider is not registered here: it is bound to a
// checkout directory, not a token, and is constructed by the local command.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(newProviderRegistry); err != nil {
		return nil, err
	}
	if err := container.Provide(application.NewCheckService); err != nil {
		return nil, err
	}

	return container, nil
}

func newProviderRegistry() *provider.Registry {
	reg := provider.NewRegistry()
	reg.Register("github", github.New)
	reg.Register("gitlab", gitlab.New)
	return reg
}

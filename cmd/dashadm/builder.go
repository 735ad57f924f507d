package main

import (
	"github.com/spf13/cobra"

	"github.com/orgtools/dashadm/adapters/dashboard"
	"github.com/orgtools/dashadm/adapters/dashboard/api"
	"github.com/orgtools/dashadm/config/dashenv"
	"github.com/orgtools/dashadm/domain"
	adminuc "github.com/orgtools/dashadm/usecase/admin"
	orguc "github.com/orgtools/dashadm/usecase/organization"
)

// buildRepos resolves configuration and constructs the dashboard-backed
// repositories. Configuration errors surface here, before any network call.
func buildRepos(cmd *cobra.Command) (*domain.Repositories, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := dashenv.Resolve(dashenv.Options{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Timeout:    timeout,
		ConfigPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	exec := api.NewExecutor(client)
	return &domain.Repositories{
		Organization: dashboard.NewOrganizationRepo(exec),
		Admin:        dashboard.NewAdminRepo(exec),
	}, nil
}

// buildAdminUseCase constructs the admin usecase for a command invocation.
func buildAdminUseCase(cmd *cobra.Command) (*adminuc.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &adminuc.UseCase{Repos: &adminuc.Repos{
		Organization: repos.Organization,
		Admin:        repos.Admin,
	}}, nil
}

// buildOrgUseCase constructs the organization usecase for a command
// invocation.
func buildOrgUseCase(cmd *cobra.Command) (*orguc.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &orguc.UseCase{Repos: &orguc.Repos{Organization: repos.Organization}}, nil
}

// orgFilter returns the organization name filter for a command invocation.
func orgFilter(cmd *cobra.Command) string {
	filter, _ := cmd.Flags().GetString("orgs")
	return filter
}

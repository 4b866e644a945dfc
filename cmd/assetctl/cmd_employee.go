package main

import (
	"assethub/internal/client/views"
	"assethub/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newEmployeeCmd(a *app) *cobra.Command {
	employee := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"me"},
		Short:   "Employee commands",
	}

	employee.AddCommand(
		guarded(browseCmd(a, "assets", "Browse your requests, cancel or return assets", views.MyRequests), "/employee/assets", entity.RoleEmployee),
		guarded(browseCmd(a, "monthly", "Browse this month's requests", views.Monthly), "/employee/monthly", entity.RoleEmployee),
		guarded(browseCmd(a, "request", "Request an asset", views.Requestable), "/employee/request", entity.RoleEmployee),
		guarded(browseCmd(a, "team", "Browse your team", views.Team), "/employee/team", entity.RoleEmployee),
	)

	return employee
}

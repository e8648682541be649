package main

import (
	"fmt"

	"github.com/manhva-oppa/oppa-blog/bootstrap"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/repository/repository_admin"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_admin"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE:  runAdminCreate,
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "display name")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "login email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "login password (min 8 characters)")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}

func runAdminCreate(cmd *cobra.Command, _ []string) error {
	app, err := bootstrap.App(configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	repo := repository_admin.NewAdminRepository(app.Database(), domain.CollectionAdmins)
	lu := usecase_admin.NewLoginUsecase(repo, app.Env.AccessTokenSecret, app.Env.AccessTokenExpiryHour, app.Env.Timeout())

	admin, err := lu.CreateAdmin(cmd.Context(), adminName, adminEmail, adminPassword)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.UserID)
	return nil
}

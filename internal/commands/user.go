package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage department members",
}

var userAddCmd = &cobra.Command{
	Use:   "add [username]",
	Short: "Register a department member",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = args[0]
		}
		roleFlag, _ := cmd.Flags().GetString("role")
		role := models.UserRole(roleFlag)
		if role != models.RoleManager && role != models.RoleDesigner {
			fmt.Printf("Error: role must be %s or %s\n", models.RoleManager, models.RoleDesigner)
			return
		}

		user, err := db.CreateUser(ctx, args[0], name, role)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("👤 Registered %s (%s) as %s\n", user.Name, user.Username, user.Role)
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List department members",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		users, err := db.ListUsers(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(users) == 0 {
			fmt.Println("No users registered")
			return
		}
		for _, u := range users {
			fmt.Printf("  %-16s %-10s %s\n", u.Username, u.Role, u.Name)
		}
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)

	userAddCmd.Flags().String("name", "", "Full name")
	userAddCmd.Flags().String("role", string(models.RoleDesigner), "Role: manager or designer")
}

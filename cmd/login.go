/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginUser string
var loginPassword string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend",
	Long:  `Logs in to the backend api and stores the session token locally`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient()
		if err != nil {
			fmt.Println(err)
			return
		}
		ctx, cancel := cmdContext()
		defer cancel()
		tok, err := c.Login(ctx, loginUser, loginPassword)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("logged in as %s\n", tok.User.Username)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient()
		if err != nil {
			fmt.Println(err)
			return
		}
		if err = c.Logout(); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("logged out")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "backend username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "backend password")
	loginCmd.MarkFlagRequired("user")
	loginCmd.MarkFlagRequired("password")
}

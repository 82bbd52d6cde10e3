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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/msvens/pfolio/internal/client"
	"github.com/msvens/pfolio/internal/config"
	"github.com/msvens/pfolio/internal/query"
	"github.com/msvens/pfolio/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pfolio",
	Short: "Photo portfolio frontend",
	Long:  `Serves a photo portfolio website on top of a portfolio backend api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient wires up a backend client from config for the cli commands
func newClient() (*client.Client, error) {
	config.InitConfig()
	store, err := session.NewStore(config.TokenFile())
	if err != nil {
		return nil, err
	}
	l := zap.NewNop().Sugar()
	return client.New(config.ApiUrl(), store, time.Duration(config.ApiTimeout())*time.Second, l), nil
}

func newQueryService() (*query.Service, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	return query.New(c, zap.NewNop().Sugar()), nil
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

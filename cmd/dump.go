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
	"encoding/json"
	"fmt"

	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/query"
	"github.com/spf13/cobra"
)

var dumpWhat string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump backend data",
	Long:  `Dumps photos or collections in json format`,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := newQueryService()
		if err != nil {
			fmt.Println(err)
			return
		}
		ctx, cancel := cmdContext()
		defer cancel()
		var out interface{}
		switch dumpWhat {
		case "photos":
			out, err = q.Photos(ctx, query.Filter{Scope: api.ScopeAdmin})
		case "collections":
			out, err = q.Collections(ctx, api.ScopeAdmin)
		default:
			err = fmt.Errorf("unrecognised data set: %v", dumpWhat)
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		if out, err := json.MarshalIndent(out, "", "  "); err != nil {
			fmt.Println(err)
			return
		} else {
			fmt.Println(string(out))
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpWhat, "data", "d", "photos", "photos or collections")
}

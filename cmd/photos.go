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
	"strings"

	"github.com/msvens/pfolio/internal/api"
	"github.com/msvens/pfolio/internal/query"
	"github.com/spf13/cobra"
)

var photosScope string
var photosTags []string
var photosCollection string
var photosLimit int

// photosCmd represents the photos command
var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "List photos",
	Long:  `Lists photos from the backend, admin scope requires a prior login`,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := newQueryService()
		if err != nil {
			fmt.Println(err)
			return
		}
		ctx, cancel := cmdContext()
		defer cancel()
		photos, err := q.Photos(ctx, query.Filter{
			Scope:      api.Scope(photosScope),
			Tags:       photosTags,
			Collection: photosCollection,
			Limit:      photosLimit,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, p := range photos {
			title := p.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("%s\t%s\t%s\t%s\n", p.Id, p.Visibility, title, strings.Join(p.Tags, ","))
		}
	},
}

func init() {
	rootCmd.AddCommand(photosCmd)

	photosCmd.Flags().StringVarP(&photosScope, "scope", "s", "public", "public, collection or admin")
	photosCmd.Flags().StringSliceVarP(&photosTags, "tag", "t", nil, "filter by tag")
	photosCmd.Flags().StringVarP(&photosCollection, "collection", "c", "", "filter by collection slug")
	photosCmd.Flags().IntVarP(&photosLimit, "limit", "l", 0, "max photos to list")
}

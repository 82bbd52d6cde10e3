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
	"os"
	"path/filepath"

	"github.com/msvens/pfolio/internal/query"
	"github.com/spf13/cobra"
)

var uploadTitle string
var uploadTags []string
var uploadCollections []string
var uploadFeatured bool

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [files]",
	Short: "Upload photos",
	Long:  `Uploads one or more image files, exif data is read from the images`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q, err := newQueryService()
		if err != nil {
			fmt.Println(err)
			return
		}
		ctx, cancel := cmdContext()
		defer cancel()
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				fmt.Println(err)
				return
			}
			photo, err := q.Upload(ctx, f, filepath.Base(path), query.PhotoForm{
				Title:       uploadTitle,
				Tags:        uploadTags,
				Collections: uploadCollections,
				Featured:    uploadFeatured,
			})
			f.Close()
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf("uploaded %s as %s\n", path, photo.Id)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "", "", "photo title")
	uploadCmd.Flags().StringSliceVarP(&uploadTags, "tag", "t", nil, "photo tags")
	uploadCmd.Flags().StringSliceVarP(&uploadCollections, "collection", "c", nil, "collection ids")
	uploadCmd.Flags().BoolVarP(&uploadFeatured, "featured", "f", false, "mark as featured")
}
